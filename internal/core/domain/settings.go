package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Built-in repair defaults. They describe the one corruption gamefix was
// written for: a duplicated default export and a header whose Dialog
// opening tags were dropped by an earlier automated edit.
const (
	// DefaultPath is the document repaired when no path is configured.
	DefaultPath = "client/src/pages/Game.tsx"

	// DefaultMarker is the trailing statement that was duplicated.
	DefaultMarker = "export default Game;"

	// DefaultPattern matches the round badge label, the closing tags that
	// follow it and the start of the orphaned DialogTitle.
	DefaultPattern = `ROUND \{round\} / \{totalRounds\}\s*</Badge>\s*</div>\s*</div>\s*</div>\s*</div>\s*<DialogTitle`

	// DefaultAuditTag is the container tag counted by the balance audit.
	DefaultAuditTag = "div"
)

// DefaultReplacement restores the missing closing div, the popup library
// Dialog and its header, then continues into the DialogTitle token.
const DefaultReplacement = `ROUND {round} / {totalRounds}
                </Badge>
              </div>
            </div>
          </div>
        </div>
      </div>

      {/* POPUP LIBRARY DIALOG */}
      <Dialog open={showPopupLibrary} onOpenChange={setShowPopupLibrary}>
        <DialogContent className="max-w-2xl bg-black/90 border-white/10 backdrop-blur-xl max-h-[80vh] overflow-y-auto custom-scrollbar">
          <DialogHeader>
            <DialogTitle`

// RepairSettings configures a repair run.
type RepairSettings struct {
	// Path is the document to repair.
	Path string

	// Marker is the literal truncation anchor for deduplication.
	Marker string

	// Pattern is the RE2 expression matching the corrupted fragment.
	Pattern string

	// Replacement is inserted literally in place of each fragment match.
	Replacement string

	// AuditTag is the tag name counted by the balance audit.
	AuditTag string
}

// DefaultRepairSettings returns the built-in repair settings.
func DefaultRepairSettings() RepairSettings {
	return RepairSettings{
		Path:        DefaultPath,
		Marker:      DefaultMarker,
		Pattern:     DefaultPattern,
		Replacement: DefaultReplacement,
		AuditTag:    DefaultAuditTag,
	}
}

// Validate checks that the settings can drive a repair run.
func (s RepairSettings) Validate() error {
	if strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("%w: path is required", ErrInvalidInput)
	}
	if s.Marker == "" {
		return fmt.Errorf("%w: marker is required", ErrInvalidInput)
	}
	if s.Pattern == "" {
		return fmt.Errorf("%w: pattern is required", ErrInvalidInput)
	}
	if _, err := s.CompilePattern(); err != nil {
		return err
	}
	if !isTagName(s.AuditTag) {
		return fmt.Errorf("%w: audit tag %q is not a tag name", ErrInvalidInput, s.AuditTag)
	}
	return nil
}

// CompilePattern compiles the fragment pattern.
func (s RepairSettings) CompilePattern() (*regexp.Regexp, error) {
	re, err := regexp.Compile(s.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern: %v", ErrInvalidInput, err)
	}
	return re, nil
}

var tagNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9.\-]*$`)

func isTagName(s string) bool {
	return tagNameRe.MatchString(s)
}

// Setting keys, as stored in the config file.
const (
	KeyPath        = "target.path"
	KeyMarker      = "dedupe.marker"
	KeyPattern     = "repair.pattern"
	KeyReplacement = "repair.replacement"
	KeyAuditTag    = "audit.tag"
)

// SettingKeys returns the recognised setting keys, sorted.
func SettingKeys() []string {
	return []string{KeyAuditTag, KeyMarker, KeyPattern, KeyReplacement, KeyPath}
}

// Value returns the value of the setting named by key.
func (s RepairSettings) Value(key string) (string, error) {
	switch key {
	case KeyPath:
		return s.Path, nil
	case KeyMarker:
		return s.Marker, nil
	case KeyPattern:
		return s.Pattern, nil
	case KeyReplacement:
		return s.Replacement, nil
	case KeyAuditTag:
		return s.AuditTag, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
}

// Apply sets the setting named by key. It does not validate the result.
func (s *RepairSettings) Apply(key, value string) error {
	switch key {
	case KeyPath:
		s.Path = value
	case KeyMarker:
		s.Marker = value
	case KeyPattern:
		s.Pattern = value
	case KeyReplacement:
		s.Replacement = value
	case KeyAuditTag:
		s.AuditTag = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	return nil
}
