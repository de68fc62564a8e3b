package bot

// Reply texts shared across handlers and callbacks.
const (
	textWelcomeBack       = "Welcome back, %s!"
	textPickAction        = "Pick an action:"
	textPleaseRegister    = "Hi! You are not registered yet. Tap /register to create an account."
	textAlreadyRegistered = "You are already registered. Pick an action below."
	textAskName           = "What is your name?"
	textAskLogin          = "Pick a login (it must be unique):"
	textLoginTaken        = "This login is already taken. Send /register to try again with another one."
	textRegistered        = "Nice to meet you, %s! Your account is ready."

	textAskTitle       = "What is the task title?"
	textAskDescription = "Add a description for the task:"
	textTaskCreated    = "Task %q saved."

	textCompletedHeader    = "Your completed tasks:"
	textNonCompletedHeader = "Your pending tasks:"
	textNoTasks            = "Nothing here yet."

	textManageTask    = "Task: %s\nWhat do you want to do with it?"
	textNoDescription = "This task has no description."
	textTaskDone      = "Task %q is marked as done."
	textTaskDeleted   = "Task %q deleted."
	textTaskNotFound  = "I could not find that task. It may have been deleted already."

	textCanceled      = "Okay, canceled."
	textNothingToStop = "There is nothing to cancel."
	textUnknown       = "I do not know this command. Pick an action below."
	textFailure       = "Something went wrong. Please try again."
)
