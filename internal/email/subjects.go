package email

const (
	subjectAssignmentCreatedFmt = "New lead assigned: %s"
	subjectDueReminderFmt       = "Reminder: assignment for %s is due"
)
