/*
The test matrix generator: expands one (function, display mode, version) request into the ordered
rows of a test specification.

For every slot the function is placed in (left menu, customer tab, place tab, in that order) the
generator emits:
  - one display row per user type, gated by the permissions of the user type,
  - for screens with a form, one write flow row per login user,
  - for the edit screen, the delete flow rows,
  - for screens with a form, one validation row per login user and form field.
*/
package matrix

import (
	"strings"

	"github.com/daedaleanai/testspec/diagnostics"
	"github.com/daedaleanai/testspec/formitems"
	"github.com/daedaleanai/testspec/locale"
	"github.com/daedaleanai/testspec/logging"
	"github.com/daedaleanai/testspec/settings"
	"go.uber.org/zap"
)

// PermissionChecker answers whether a user type can see or change a function.
type PermissionChecker interface {
	Readable(userType, function string) bool
	Writable(userType, function string) bool
}

// FieldSource provides the form fields of a function, grouped by login user.
type FieldSource interface {
	AudiencesFor(function string) []formitems.Audience
}

// Request selects what to generate.
type Request struct {
	Function string
	Mode     DisplayMode
	Version  string
}

// Generator builds test specification rows. It only reads its inputs and can be reused.
type Generator struct {
	settings    *settings.Settings
	permissions PermissionChecker
	fields      FieldSource
	texts       *locale.Texts

	// CollapseConditions emits a single validation row per conditionally required field, showing
	// the outcome of its last clause, instead of one row per clause.
	CollapseConditions bool
}

// NewGenerator creates a generator. A nil field source means no function has form fields.
func NewGenerator(s *settings.Settings, permissions PermissionChecker, fields FieldSource, texts *locale.Texts) *Generator {
	if fields == nil {
		fields = formitems.Empty()
	}
	return &Generator{settings: s, permissions: permissions, fields: fields, texts: texts}
}

// Generate returns the rows for a request. It fails with an UnknownFunction error if the function
// is not in the settings and with a NoPlacement error if the function is not reachable from any
// slot; in the latter case there is nothing to generate.
func (g *Generator) Generate(req Request) ([]Row, error) {
	function, err := g.settings.Function(req.Function)
	if err != nil {
		return nil, err
	}
	placement, err := g.settings.Placement(function.ID)
	if err != nil {
		return nil, err
	}
	slots := placement.Slots()
	if len(slots) == 0 {
		return nil, diagnostics.NoPlacement(req.Function)
	}

	b := rowBuilder{
		Generator: g,
		function:  function,
		req:       req,
		audiences: g.audiences(function.ID),
	}

	var rows []Row
	for _, slot := range slots {
		before := len(rows)
		rows = append(rows, b.displayRows(slot)...)
		if req.Mode.Writes() {
			rows = append(rows, b.writeFlowRows()...)
		}
		if req.Mode == ModeEdit {
			rows = append(rows, b.deleteFlowRows()...)
		}
		if req.Mode.Writes() {
			rows = append(rows, b.validationRows()...)
		}
		logging.L().Debug("Generated slot",
			zap.String("function", function.ID),
			zap.Stringer("slot", slot),
			zap.Stringer("mode", req.Mode),
			zap.Int("rows", len(rows)-before))
	}
	return rows, nil
}

// audiences returns the login users and their fields for a function. Without configuration the
// default test user fills in an empty form.
func (g *Generator) audiences(function string) []formitems.Audience {
	configured := g.fields.AudiencesFor(function)
	if len(configured) == 0 {
		return []formitems.Audience{{LoginUser: g.settings.DefaultTestUser()}}
	}
	audiences := make([]formitems.Audience, 0, len(configured))
	for _, a := range configured {
		if a.LoginUser == "" {
			a.LoginUser = g.settings.DefaultTestUser()
		}
		audiences = append(audiences, a)
	}
	return audiences
}

// rowBuilder holds the state of a single request.
type rowBuilder struct {
	*Generator
	function  settings.Function
	req       Request
	audiences []formitems.Audience
}

func (b *rowBuilder) t(key string, args ...interface{}) string {
	return b.texts.T(key, args...)
}

func (b *rowBuilder) modeLabel(mode DisplayMode) string {
	return mode.Label(b.texts)
}

// displayRows checks that every user type reaches, or does not reach, the screen.
func (b *rowBuilder) displayRows(slot settings.Slot) []Row {
	userTypes := b.settings.UserTypes()
	rows := make([]Row, 0, len(userTypes))
	for _, userType := range userTypes {
		rows = append(rows, Row{
			Section:      b.t(locale.SectionDisplay),
			Title:        userType.Name,
			Precondition: b.displayPrecondition(userType.Name, slot),
			Steps:        b.navigationStep(slot),
			Expected:     b.displayResult(userType.ID),
			Version:      b.req.Version,
		})
	}
	return rows
}

// displayPrecondition is the login sentence followed by where the tester starts from.
func (b *rowBuilder) displayPrecondition(userName string, slot settings.Slot) string {
	parts := []string{b.t(locale.PreconditionLogin, b.settings.AppName(), userName)}
	switch slot {
	case settings.SlotLeftMenu:
		if screen, ok := b.req.Mode.precedingScreen(); ok {
			parts = append(parts, b.t(locale.PreconditionScreen, b.function.Name, b.modeLabel(screen)))
		} else {
			parts = append(parts, b.t(locale.PreconditionDashboard))
		}
	case settings.SlotCustomerTab:
		parts = append(parts, b.t(locale.PreconditionCustomerShow))
	case settings.SlotPlaceTab:
		parts = append(parts, b.t(locale.PreconditionPlaceShow))
	}
	if b.req.Mode != ModeIndex {
		parts = append(parts, b.t(locale.PreconditionBeforeCreateData))
	}
	return combineText(parts...)
}

// navigationStep is how the tester opens the screen.
func (b *rowBuilder) navigationStep(slot settings.Slot) string {
	switch b.req.Mode {
	case ModeShow:
		return b.t(locale.StepClickRecord, 1)
	case ModeNew:
		return b.t(locale.StepClickButton, 1, b.t(locale.ButtonNew))
	case ModeDuplicate:
		return b.t(locale.StepClickButton, 1, b.t(locale.ButtonDuplicate))
	case ModeEdit:
		return b.t(locale.StepClickButton, 1, b.t(locale.ButtonEdit))
	}
	if slot == settings.SlotLeftMenu {
		return b.t(locale.StepClickLeftMenu, 1, b.function.Name)
	}
	return b.t(locale.StepClickTabMenu, 1, b.function.Name)
}

// displayResult depends on the permissions of the user type. The show screen is not gated.
func (b *rowBuilder) displayResult(userType string) string {
	switch b.req.Mode {
	case ModeIndex:
		if !b.permissions.Readable(userType, b.function.ID) {
			return b.t(locale.ResultNotLeftMenu, 1, b.function.Name)
		}
	case ModeNew, ModeDuplicate:
		if !b.permissions.Writable(userType, b.function.ID) {
			return b.t(locale.ResultNotExistButton, 1, b.t(locale.ButtonNew))
		}
	case ModeEdit:
		if !b.permissions.Writable(userType, b.function.ID) {
			return b.t(locale.ResultNotExistButton, 1, b.t(locale.ButtonEdit))
		}
	}
	return b.t(locale.ResultMoveDisplay, 1, b.function.Name, b.modeLabel(b.req.Mode))
}

// submitButton is the button that saves the form of the current screen.
func (b *rowBuilder) submitButton() string {
	if b.req.Mode == ModeEdit {
		return b.t(locale.ButtonUpdate)
	}
	return b.t(locale.ButtonCreate)
}

// formPrecondition is the precondition of the rows that fill in the form as the given login user.
func (b *rowBuilder) formPrecondition(loginUser string) string {
	return combineText(
		b.t(locale.PreconditionLogin, b.settings.AppName(), loginUser),
		b.t(locale.PreconditionDisplayedScreen, b.function.Name, b.modeLabel(b.req.Mode)),
		b.t(locale.PreconditionBeforeCreateData),
	)
}

// writeFlowRows submit the form once per login user.
func (b *rowBuilder) writeFlowRows() []Row {
	title, check := locale.TitleCreate, locale.ResultCreateInputCheck
	switch b.req.Mode {
	case ModeDuplicate:
		check = locale.ResultDuplicateInputCheck
	case ModeEdit:
		title, check = locale.TitleUpdate, locale.ResultUpdateInputCheck
	}

	rows := make([]Row, 0, len(b.audiences))
	for _, audience := range b.audiences {
		rows = append(rows, Row{
			Section:      b.modeLabel(b.req.Mode),
			Title:        b.t(title),
			Precondition: b.formPrecondition(audience.LoginUser),
			Notes:        b.testDataNotes(audience.Fields),
			Steps: combineText(
				b.t(locale.StepInput, 1, b.submitButton()),
				b.t(locale.StepClickRecord, 2),
			),
			Expected: combineText(
				b.t(locale.ResultInputSuccess, 1, b.submitButton(), b.function.Name),
				b.t(check, 2, b.function.Name),
			),
			Version: b.req.Version,
		})
	}
	return rows
}

// testDataNotes lists the values to enter, one field per line.
func (b *rowBuilder) testDataNotes(fields []formitems.Field) string {
	var notes []string
	for _, field := range fields {
		if len(field.TestData) == 0 {
			continue
		}
		notes = append(notes, b.t(locale.NoteTestData, field.Label, strings.Join(field.TestData, " / ")))
	}
	return combineText(notes...)
}

// deleteFlowRows open the delete confirmation, cancel it and finally delete the record, always as
// the default test user.
func (b *rowBuilder) deleteFlowRows() []Row {
	precondition := combineText(
		b.t(locale.PreconditionLogin, b.settings.AppName(), b.settings.DefaultTestUser()),
		b.t(locale.PreconditionDisplayedScreen, b.function.Name, b.modeLabel(ModeEdit)),
	)
	section := b.t(locale.SectionDelete)
	return []Row{
		{
			Section:      section,
			Title:        b.t(locale.TitleDeleteConfirmModal),
			Precondition: precondition,
			Steps:        combineText(b.t(locale.StepClickDeleteButton, 1)),
			Expected:     combineText(b.t(locale.ResultOpenDeleteConfirmModal, 1)),
			Version:      b.req.Version,
		},
		{
			Section:      section,
			Title:        b.t(locale.TitleDeleteCancel),
			Precondition: precondition,
			Steps: combineText(
				b.t(locale.StepClickDeleteButton, 1),
				b.t(locale.StepClickModalCancel, 2),
				b.t(locale.StepReloadIndex, 3, b.function.Name),
			),
			Expected: combineText(
				b.t(locale.ResultOpenDeleteConfirmModal, 1),
				b.t(locale.ResultCloseDeleteConfirmModal, 2),
				b.t(locale.ResultDeleteCancel, 3, b.function.Name),
			),
			Version: b.req.Version,
		},
		{
			Section:      section,
			Title:        b.t(locale.TitleDelete),
			Precondition: precondition,
			Steps: combineText(
				b.t(locale.StepClickDeleteButton, 1),
				b.t(locale.StepClickModalDelete, 2),
			),
			Expected: combineText(
				b.t(locale.ResultOpenDeleteConfirmModal, 1),
				b.t(locale.ResultDeleteSuccess, 2, b.function.Name),
			),
			Version: b.req.Version,
		},
	}
}
