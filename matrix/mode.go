package matrix

import (
	"strings"

	"github.com/daedaleanai/testspec/locale"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// DisplayMode is the screen of the application a test specification is generated for.
type DisplayMode int

const (
	ModeIndex DisplayMode = iota
	ModeNew
	ModeDuplicate
	ModeEdit
	ModeShow
)

// DisplayModes lists every display mode.
var DisplayModes = []DisplayMode{ModeIndex, ModeNew, ModeDuplicate, ModeEdit, ModeShow}

var modeIDs = map[DisplayMode]string{
	ModeIndex:     "index",
	ModeNew:       "new",
	ModeDuplicate: "duplicate",
	ModeEdit:      "edit",
	ModeShow:      "show",
}

var modeLabels = map[DisplayMode]string{
	ModeIndex:     locale.DisplayIndex,
	ModeNew:       locale.DisplayNew,
	ModeDuplicate: locale.DisplayDuplicate,
	ModeEdit:      locale.DisplayEdit,
	ModeShow:      locale.DisplayShow,
}

// String returns the stable identifier of the mode.
func (m DisplayMode) String() string {
	if id, ok := modeIDs[m]; ok {
		return id
	}
	return "unknown"
}

// Label returns the localized name of the screen.
func (m DisplayMode) Label(texts *locale.Texts) string {
	return texts.T(modeLabels[m])
}

// Writes returns true for the screens with a form: new, duplicate and edit.
func (m DisplayMode) Writes() bool {
	return m == ModeNew || m == ModeDuplicate || m == ModeEdit
}

// ParseDisplayMode accepts a mode identifier (index, new, duplicate, edit, show) or the localized
// screen name in any supported language. Full width input is normalized first.
func ParseDisplayMode(s string) (DisplayMode, error) {
	value := strings.TrimSpace(norm.NFKC.String(s))
	for _, mode := range DisplayModes {
		if strings.EqualFold(value, modeIDs[mode]) {
			return mode, nil
		}
	}
	for _, tag := range locale.Supported() {
		texts := locale.MustNew(tag.String())
		for _, mode := range DisplayModes {
			if value == norm.NFKC.String(mode.Label(texts)) || strings.EqualFold(value, mode.Label(texts)) {
				return mode, nil
			}
		}
	}
	return ModeIndex, errors.Errorf("unknown display mode `%s`", s)
}

// precedingScreen is the screen the tester starts from before reaching a screen through the left
// menu.
func (m DisplayMode) precedingScreen() (DisplayMode, bool) {
	switch m {
	case ModeNew, ModeDuplicate, ModeShow:
		return ModeIndex, true
	case ModeEdit:
		return ModeShow, true
	}
	// the index screen is reached from the dashboard
	return ModeIndex, false
}
