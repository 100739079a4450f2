package locale

// Message keys. Every key must have a translation in every catalog.
const (
	SectionDisplay    = "section.display"
	SectionDelete     = "section.delete"
	SectionValidation = "section.validation"

	TitleCreate             = "title.create"
	TitleUpdate             = "title.update"
	TitleDeleteConfirmModal = "title.delete_confirm_modal"
	TitleDeleteCancel       = "title.delete_cancel"
	TitleDelete             = "title.delete"
	TitleCondition          = "title.condition"

	DisplayIndex     = "display.index"
	DisplayNew       = "display.new"
	DisplayDuplicate = "display.duplicate"
	DisplayEdit      = "display.edit"
	DisplayShow      = "display.show"

	ButtonNew       = "button.new"
	ButtonCreate    = "button.create"
	ButtonDuplicate = "button.duplicate"
	ButtonEdit      = "button.edit"
	ButtonUpdate    = "button.update"
	ButtonCancel    = "button.cancel"
	ButtonDelete    = "button.delete"

	PreconditionLogin            = "precondition.login"
	PreconditionDashboard        = "precondition.dashboard"
	PreconditionScreen           = "precondition.screen"
	PreconditionCustomerShow     = "precondition.moved_customer_show"
	PreconditionPlaceShow        = "precondition.moved_place_show"
	PreconditionBeforeCreateData = "precondition.before_create_data"
	PreconditionDisplayedScreen  = "precondition.displayed_screen"

	StepClickLeftMenu     = "step.click_left_menu"
	StepClickTabMenu      = "step.click_tab_menu"
	StepClickRecord       = "step.click_record"
	StepClickButton       = "step.click_button"
	StepInput             = "step.input"
	StepClickDeleteButton = "step.click_delete_button"
	StepClickModalCancel  = "step.click_modal_cancel"
	StepClickModalDelete  = "step.click_modal_delete"
	StepReloadIndex       = "step.reload_index"
	StepSetCondition      = "step.set_condition"
	StepLeaveEmpty        = "step.leave_empty"

	ResultNotLeftMenu             = "result.not_left_menu"
	ResultNotExistButton          = "result.not_exist_button"
	ResultMoveDisplay             = "result.move_display"
	ResultInputSuccess            = "result.input_success"
	ResultCreateInputCheck        = "result.create_input_check"
	ResultDuplicateInputCheck     = "result.duplicate_input_check"
	ResultUpdateInputCheck        = "result.update_input_check"
	ResultOpenDeleteConfirmModal  = "result.open_delete_confirm_modal"
	ResultCloseDeleteConfirmModal = "result.close_delete_confirm_modal"
	ResultDeleteCancel            = "result.delete_cancel"
	ResultDeleteSuccess           = "result.delete_success"
	ResultInputError              = "result.input_error"
	ResultSubmitSuccess           = "result.submit_success"

	NoteTestData = "note.test_data"

	HeaderSection      = "header.section"
	HeaderTitle        = "header.title"
	HeaderPrecondition = "header.precondition"
	HeaderNotes        = "header.notes"
	HeaderSteps        = "header.steps"
	HeaderExpected     = "header.expected"
	HeaderVersion      = "header.version"

	HTMLTitle      = "html.title"
	ConvertSuccess = "html.convert_success"

	SchemaPhysicalName = "schema.physical_name"
	SchemaLogicalName  = "schema.logical_name"
	SchemaType         = "schema.type"
	SchemaLength       = "schema.length"
	SchemaNotNull      = "schema.not_null"
	SchemaPrimaryKey   = "schema.primary_key"
	SchemaRemarks      = "schema.remarks"
	SchemaYes          = "schema.yes"
	SchemaNone         = "schema.none"

	UsageMissingFunction = "usage.missing_function"
	UsageMissingDisplay  = "usage.missing_display"
	UsageMissingVersion  = "usage.missing_version"
	UsageInvalidDisplay  = "usage.invalid_display"
	UsageUnknownFunction = "usage.unknown_function"
)
