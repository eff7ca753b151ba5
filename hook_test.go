package clickscribe_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/clickscribe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookScript(t *testing.T) {
	t.Parallel()

	t.Run("reports through the named binding in the capture phase", func(t *testing.T) {
		t.Parallel()

		script, err := clickscribe.HookScript("scribeReport")

		require.NoError(t, err)
		assert.Contains(t, script, `const binding = "scribeReport";`)
		assert.Contains(t, script, `document.addEventListener(`)
		assert.Contains(t, script, "true,\n  );")
		assert.Contains(t, script, "event.ctrlKey || event.metaKey")
		assert.Contains(t, script, "event.preventDefault();")
		assert.Contains(t, script, "event.stopPropagation();")
	})

	t.Run("leaves the click alone when the binding is missing", func(t *testing.T) {
		t.Parallel()

		script, err := clickscribe.HookScript(clickscribe.DefaultBinding)
		require.NoError(t, err)

		guard := strings.Index(script, `if (typeof report !== "function") {`)
		suppress := strings.Index(script, "event.preventDefault();")
		require.NotEqual(t, -1, guard)
		require.NotEqual(t, -1, suppress)
		assert.Less(t, guard, suppress)
	})

	t.Run("rejects names that are not identifiers", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "1abc", `x"); alert(1); ("`, "a-b"} {
			_, err := clickscribe.HookScript(name)

			require.Error(t, err, name)
			assert.Equal(t, clickscribe.EINVALID, clickscribe.ErrorCode(err))
		}
	})

	t.Run("default binding is valid", func(t *testing.T) {
		t.Parallel()

		_, err := clickscribe.HookScript(clickscribe.DefaultBinding)

		require.NoError(t, err)
	})
}

func TestDecodeSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("builds target and parent nodes", func(t *testing.T) {
		t.Parallel()

		ev, err := clickscribe.DecodeSnapshot(`{"ctrlKey":true,"metaKey":false,"target":{"text":""},"parent":{"text":"Design Review"}}`)

		require.NoError(t, err)
		assert.True(t, ev.CtrlKey)
		assert.False(t, ev.MetaKey)
		assert.NotEmpty(t, ev.ID)
		require.NotNil(t, ev.Target)
		assert.Equal(t, "", ev.Target.RenderedText())
		require.NotNil(t, ev.Target.Parent())
		assert.Equal(t, "Design Review", ev.Target.Parent().RenderedText())
	})

	t.Run("missing parent yields nil Parent", func(t *testing.T) {
		t.Parallel()

		ev, err := clickscribe.DecodeSnapshot(`{"metaKey":true,"target":{"text":"Retro"},"parent":null}`)

		require.NoError(t, err)
		assert.Nil(t, ev.Target.Parent())
	})

	t.Run("missing target yields nil Target", func(t *testing.T) {
		t.Parallel()

		ev, err := clickscribe.DecodeSnapshot(`{"ctrlKey":true,"target":null,"parent":null}`)

		require.NoError(t, err)
		assert.Nil(t, ev.Target)
		_, ok := clickscribe.ExtractLabel(ev.Target)
		assert.False(t, ok)
	})

	t.Run("each event gets its own ID", func(t *testing.T) {
		t.Parallel()

		a, err := clickscribe.DecodeSnapshot(`{"ctrlKey":true}`)
		require.NoError(t, err)
		b, err := clickscribe.DecodeSnapshot(`{"ctrlKey":true}`)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()

		_, err := clickscribe.DecodeSnapshot(`not json`)

		require.Error(t, err)
		assert.Equal(t, clickscribe.EINVALID, clickscribe.ErrorCode(err))
	})
}
