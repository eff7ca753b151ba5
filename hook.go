package clickscribe

import (
	_ "embed"
	"encoding/json"
	"regexp"
	"strings"
	"text/template"

	"github.com/google/uuid"
)

// DefaultBinding is the name of the runtime binding the hook reports through.
const DefaultBinding = "__clickscribeReport"

//go:embed hook.js
var hookSource string

var hookTemplate = template.Must(template.New("hook").Parse(hookSource))

var bindingPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// HookScript returns the capture-phase click hook that reports qualifying
// clicks through the named binding. The script is idempotent per document.
//
// Returns EINVALID if binding is not a valid JavaScript identifier.
func HookScript(binding string) (string, error) {
	if !bindingPattern.MatchString(binding) {
		return "", Errorf(EINVALID, "invalid binding name %q", binding)
	}

	var b strings.Builder
	if err := hookTemplate.Execute(&b, struct{ Binding string }{binding}); err != nil {
		return "", Errorf(EINTERNAL, "rendering hook: %v", err)
	}
	return b.String(), nil
}

// Snapshot is the record of a qualifying click sent by the hook.
// Text fields hold the elements' innerText read at dispatch time.
type Snapshot struct {
	CtrlKey bool          `json:"ctrlKey"`
	MetaKey bool          `json:"metaKey"`
	Target  *SnapshotNode `json:"target"`
	Parent  *SnapshotNode `json:"parent"`
}

// SnapshotNode is one captured element.
type SnapshotNode struct {
	Text string `json:"text"`
}

// DecodeSnapshot turns a hook payload into a ClickEvent over captured nodes.
// Each event gets a fresh ID.
//
// Returns EINVALID if the payload is not a snapshot.
func DecodeSnapshot(payload string) (*ClickEvent, error) {
	var s Snapshot
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return nil, Errorf(EINVALID, "malformed click snapshot: %v", err)
	}

	ev := &ClickEvent{
		ID:      uuid.NewString(),
		CtrlKey: s.CtrlKey,
		MetaKey: s.MetaKey,
	}
	if s.Target != nil {
		target := &Node{Text: s.Target.Text}
		if s.Parent != nil {
			target.Up = &Node{Text: s.Parent.Text}
		}
		ev.Target = target
	}
	return ev, nil
}
