package locale

var messagesEn = map[string]string{
	SectionDisplay:    "Display",
	SectionDelete:     "Delete",
	SectionValidation: "Validation",

	TitleCreate:             "Create",
	TitleUpdate:             "Update",
	TitleDeleteConfirmModal: "Delete confirmation modal",
	TitleDeleteCancel:       "Cancel delete",
	TitleDelete:             "Delete",
	TitleCondition:          "%[1]s (%[2]s)",

	DisplayIndex:     "Index",
	DisplayNew:       "New",
	DisplayDuplicate: "Duplicate",
	DisplayEdit:      "Edit",
	DisplayShow:      "Show",

	ButtonNew:       "New",
	ButtonCreate:    "Create",
	ButtonDuplicate: "Duplicate",
	ButtonEdit:      "Edit",
	ButtonUpdate:    "Update",
	ButtonCancel:    "Cancel",
	ButtonDelete:    "Delete",

	PreconditionLogin:            "Logged in to %[1]s as %[2]s.",
	PreconditionDashboard:        "The dashboard is open.",
	PreconditionScreen:           "The %[2]s screen of %[1]s is open.",
	PreconditionCustomerShow:     "The customer show screen is open.",
	PreconditionPlaceShow:        "The place show screen is open.",
	PreconditionBeforeCreateData: "Test data has been registered in advance.",
	PreconditionDisplayedScreen:  "The %[2]s screen of %[1]s is displayed.",

	StepClickLeftMenu:     "%[1]d. Click %[2]s in the left menu.",
	StepClickTabMenu:      "%[1]d. Click the %[2]s tab.",
	StepClickRecord:       "%[1]d. Click a record in the list.",
	StepClickButton:       "%[1]d. Click the %[2]s button.",
	StepInput:             "%[1]d. Enter the test data and click the %[2]s button.",
	StepClickDeleteButton: "%[1]d. Click the Delete button.",
	StepClickModalCancel:  "%[1]d. Click Cancel in the delete confirmation modal.",
	StepClickModalDelete:  "%[1]d. Click Delete in the delete confirmation modal.",
	StepReloadIndex:       "%[1]d. Open the index screen of %[2]s.",
	StepSetCondition:      "%[1]d. Fill in the form so that %[2]s.",
	StepLeaveEmpty:        "%[1]d. Leave %[2]s empty.",

	ResultNotLeftMenu:             "%[1]d. %[2]s does not appear in the menu.",
	ResultNotExistButton:          "%[1]d. The %[2]s button does not exist.",
	ResultMoveDisplay:             "%[1]d. The %[3]s screen of %[2]s is displayed.",
	ResultInputSuccess:            "%[1]d. Clicking %[2]s saves the %[3]s record.",
	ResultCreateInputCheck:        "%[1]d. The created %[2]s record shows the entered values.",
	ResultDuplicateInputCheck:     "%[1]d. The duplicated %[2]s record keeps the values of the original.",
	ResultUpdateInputCheck:        "%[1]d. The updated %[2]s record shows the entered values.",
	ResultOpenDeleteConfirmModal:  "%[1]d. The delete confirmation modal opens.",
	ResultCloseDeleteConfirmModal: "%[1]d. The delete confirmation modal closes.",
	ResultDeleteCancel:            "%[1]d. The %[2]s record is not deleted.",
	ResultDeleteSuccess:           "%[1]d. The %[2]s record is deleted.",
	ResultInputError:              "%[1]d. An input error is shown for %[2]s.",
	ResultSubmitSuccess:           "%[1]d. The %[2]s record is saved without an error.",

	NoteTestData: "%[1]s: %[2]s",

	HeaderSection:      "Section",
	HeaderTitle:        "Title",
	HeaderPrecondition: "Precondition",
	HeaderNotes:        "Notes",
	HeaderSteps:        "Steps",
	HeaderExpected:     "Expected result",
	HeaderVersion:      "Version",

	HTMLTitle:      "Test specification",
	ConvertSuccess: "Converted to %[1]s.",

	SchemaPhysicalName: "Column",
	SchemaLogicalName:  "Logical name",
	SchemaType:         "Type",
	SchemaLength:       "Length",
	SchemaNotNull:      "NOT NULL",
	SchemaPrimaryKey:   "Primary Key",
	SchemaRemarks:      "Remarks",
	SchemaYes:          "yes",
	SchemaNone:         "-",

	UsageMissingFunction: "Please specify a function name (--f)",
	UsageMissingDisplay:  "Please specify a display name (--d)",
	UsageMissingVersion:  "Please specify a version (--v)",
	UsageInvalidDisplay:  "Display `%[1]s` is not one of index, new, duplicate, edit or show",
	UsageUnknownFunction: "Function `%[1]s` is not defined",
}
