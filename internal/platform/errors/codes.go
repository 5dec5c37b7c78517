package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Shared taxonomy
	CodeValidation         Code = "VALIDATION"
	CodeNotFound           Code = "NOT_FOUND"
	CodeQuotaExceeded      Code = "QUOTA_EXCEEDED"
	CodeCapacityExceeded   Code = "CAPACITY_EXCEEDED"
	CodeIncompleteApproval Code = "INCOMPLETE_APPROVAL"
	CodeDuplicateRequest   Code = "DUPLICATE_REQUEST"
	CodeRequirementsNotMet Code = "REQUIREMENTS_NOT_MET"
	CodePermissionDenied   Code = "PERMISSION_DENIED"

	// User errors
	CodeUserNameEmpty       Code = "USER_NAME_EMPTY"
	CodeUserAlreadyExists   Code = "USER_ALREADY_EXISTS"
	CodeUserBadCredentials  Code = "USER_BAD_CREDENTIALS"
	CodeUserInvalidTier     Code = "USER_INVALID_TIER"
	CodeUserNotMaster       Code = "USER_NOT_MASTER"
	CodeUserProtectedDelete Code = "USER_PROTECTED_DELETE"

	// Campaign errors
	CodeCampaignNameEmpty          Code = "CAMPAIGN_NAME_EMPTY"
	CodeCampaignInvalidSlot        Code = "CAMPAIGN_INVALID_TIME_SLOT"
	CodeCampaignTooManySlots       Code = "CAMPAIGN_TOO_MANY_TIME_SLOTS"
	CodeCampaignStatusDisallowsOp  Code = "CAMPAIGN_STATUS_DISALLOWS_OPERATION"
	CodeCampaignAlreadyEnrolled    Code = "CAMPAIGN_ALREADY_ENROLLED"
	CodeCampaignOwnEnrollment      Code = "CAMPAIGN_OWN_ENROLLMENT"
	CodeCampaignInvalidMaxPlayers  Code = "CAMPAIGN_INVALID_MAX_PLAYERS"
	CodeCampaignSessionInPast      Code = "CAMPAIGN_SESSION_IN_PAST"
	CodeCampaignDuplicateSession   Code = "CAMPAIGN_DUPLICATE_SESSION"
	CodeCampaignNotEnrolled        Code = "CAMPAIGN_NOT_ENROLLED"
	CodeCampaignSheetNotResettable Code = "CAMPAIGN_SHEET_NOT_RESETTABLE"

	// Attendance errors
	CodeAttendanceReasonRequired Code = "ATTENDANCE_REASON_REQUIRED"

	// Sheet errors
	CodeSheetInvalidTransition Code = "SHEET_INVALID_TRANSITION"
	CodeSheetImageEmpty        Code = "SHEET_IMAGE_EMPTY"

	// Dice errors
	CodeDiceInvalidDie      Code = "DICE_INVALID_DIE"
	CodeDiceCountOutOfRange Code = "DICE_COUNT_OUT_OF_RANGE"
	CodeDiceMacroNameEmpty  Code = "DICE_MACRO_NAME_EMPTY"

	// Chat errors
	CodeChatMessageEmpty Code = "CHAT_MESSAGE_EMPTY"

	// Storage errors
	CodeSnapshotNotFound Code = "SNAPSHOT_NOT_FOUND"
)
