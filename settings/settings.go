// Application settings: the functions under test, where they are reachable from and the user types
// tests are written for.

package settings

import (
	"fmt"
	"strings"

	"github.com/daedaleanai/testspec/diagnostics"
)

// A function of the application under test, for example "customers".
type Function struct {
	ID          string
	Name        string
	LeftMenu    bool
	CustomerTab bool
	PlaceTab    bool
}

// A type of user that can log into the application. The order of user types is the order of the
// display rows in a report.
type UserType struct {
	ID   string
	Name string
}

// Slot is one of the navigation entry points of a function.
type Slot int

const (
	SlotLeftMenu Slot = iota
	SlotCustomerTab
	SlotPlaceTab
)

func (s Slot) String() string {
	switch s {
	case SlotLeftMenu:
		return "left-menu"
	case SlotCustomerTab:
		return "customer-tab"
	case SlotPlaceTab:
		return "place-tab"
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// Placement tells through which entry points a function is reachable, indexed by Slot.
type Placement [3]bool

// Slots returns the reachable slots in the fixed order left menu, customer tab, place tab.
func (p Placement) Slots() []Slot {
	var slots []Slot
	for i, placed := range p {
		if placed {
			slots = append(slots, Slot(i))
		}
	}
	return slots
}

// Any returns true if the function is reachable at all.
func (p Placement) Any() bool {
	return p[SlotLeftMenu] || p[SlotCustomerTab] || p[SlotPlaceTab]
}

// Settings is the immutable description of the application under test.
type Settings struct {
	appName         string
	defaultTestUser string
	userTypes       []UserType
	functions       []Function
	functionIndex   map[string]int
	columnNames     map[string]string
}

// New validates and builds the settings. Identifiers must be unique and every entry needs a
// display name.
func New(appName, defaultTestUser string, userTypes []UserType, functions []Function, columnNames map[string]string) (*Settings, error) {
	if strings.TrimSpace(appName) == "" {
		return nil, fmt.Errorf("the application name is empty")
	}
	if strings.TrimSpace(defaultTestUser) == "" {
		return nil, fmt.Errorf("the default test user is empty")
	}
	if len(userTypes) == 0 {
		return nil, fmt.Errorf("no user types are defined")
	}

	s := &Settings{
		appName:         appName,
		defaultTestUser: defaultTestUser,
		userTypes:       append([]UserType(nil), userTypes...),
		functions:       append([]Function(nil), functions...),
		functionIndex:   make(map[string]int, len(functions)),
		columnNames:     make(map[string]string, len(columnNames)),
	}

	seenUsers := make(map[string]bool, len(userTypes))
	for _, u := range userTypes {
		if u.ID == "" || u.Name == "" {
			return nil, fmt.Errorf("user type `%s` needs both an id and a name", u.ID)
		}
		if seenUsers[u.ID] {
			return nil, fmt.Errorf("user type `%s` is defined twice", u.ID)
		}
		seenUsers[u.ID] = true
	}

	for i, f := range functions {
		if f.ID == "" || f.Name == "" {
			return nil, fmt.Errorf("function `%s` needs both an id and a name", f.ID)
		}
		if _, ok := s.functionIndex[f.ID]; ok {
			return nil, fmt.Errorf("function `%s` is defined twice", f.ID)
		}
		s.functionIndex[f.ID] = i
	}

	for column, name := range columnNames {
		s.columnNames[column] = name
	}
	return s, nil
}

// AppName is the name of the application as it appears in the login preconditions.
func (s *Settings) AppName() string {
	return s.appName
}

// DefaultTestUser is the display name of the user that runs the write, delete and validation tests
// when no login users are configured for a function.
func (s *Settings) DefaultTestUser() string {
	return s.defaultTestUser
}

// UserTypes returns a copy of the user types in report order.
func (s *Settings) UserTypes() []UserType {
	return append([]UserType(nil), s.userTypes...)
}

// Functions returns a copy of the functions in declaration order.
func (s *Settings) Functions() []Function {
	return append([]Function(nil), s.functions...)
}

// FunctionIDs returns the function identifiers in declaration order.
func (s *Settings) FunctionIDs() []string {
	ids := make([]string, 0, len(s.functions))
	for _, f := range s.functions {
		ids = append(ids, f.ID)
	}
	return ids
}

// Function finds a function by identifier.
func (s *Settings) Function(id string) (Function, error) {
	i, ok := s.functionIndex[id]
	if !ok {
		return Function{}, diagnostics.UnknownFunction(id)
	}
	return s.functions[i], nil
}

// Placement returns the entry points of a function. An unknown function has no placement and
// returns an UnknownFunction error.
func (s *Settings) Placement(id string) (Placement, error) {
	f, err := s.Function(id)
	if err != nil {
		return Placement{}, err
	}
	return Placement{f.LeftMenu, f.CustomerTab, f.PlaceTab}, nil
}

// DisplayName returns the name of a function as shown in the application.
func (s *Settings) DisplayName(id string) (string, error) {
	f, err := s.Function(id)
	if err != nil {
		return "", err
	}
	return f.Name, nil
}

// ColumnName returns the logical name of a database column, if one is known.
func (s *Settings) ColumnName(column string) (string, bool) {
	name, ok := s.columnNames[column]
	return name, ok
}

// ColumnNames returns a copy of the logical column names.
func (s *Settings) ColumnNames() map[string]string {
	names := make(map[string]string, len(s.columnNames))
	for column, name := range s.columnNames {
		names[column] = name
	}
	return names
}
