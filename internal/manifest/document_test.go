package manifest

import (
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/sealkit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretYAML = `apiVersion: v1
kind: Secret
metadata:
  name: my-app
  namespace: prod
  labels:
    app: my-app
type: Opaque
data:
  username: admin
  password: s3cret
  empty: ""
  nothing:
`

func TestLoad_Secret(t *testing.T) {
	doc, err := Load([]byte(secretYAML))
	require.NoError(t, err)

	assert.Equal(t, KindSecret, doc.Kind())
	assert.Equal(t, "Opaque", doc.String("type"))

	data := doc.Data()
	require.NotNil(t, data)
	assert.Equal(t, 4, data.Len())

	entries := data.Entries()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	assert.Equal(t, []string{"username", "password", "empty", "nothing"}, keys)
	assert.Equal(t, "admin", entries[0].Value)
	assert.True(t, entries[3].Null)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "kind: [unclosed\n"},
		{"empty", ""},
		{"scalar root", "just a string"},
		{"sequence root", "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.content))
			assert.ErrorIs(t, err, kerrors.ErrParse)
		})
	}
}

func TestDump_PreservesUntouchedFields(t *testing.T) {
	doc, err := Load([]byte(secretYAML))
	require.NoError(t, err)

	doc.Data().Set("username", "YWRtaW4=")

	out, err := doc.Dump()
	require.NoError(t, err)

	reloaded, err := Load(out)
	require.NoError(t, err)

	assert.Equal(t, KindSecret, reloaded.Kind())
	value, ok := reloaded.Data().Get("username")
	assert.True(t, ok)
	assert.Equal(t, "YWRtaW4=", value)

	value, ok = reloaded.Data().Get("password")
	assert.True(t, ok)
	assert.Equal(t, "s3cret", value)

	text := string(out)
	assert.Less(t, strings.Index(text, "apiVersion"), strings.Index(text, "metadata"))
	assert.Less(t, strings.Index(text, "username"), strings.Index(text, "password"))
	assert.Contains(t, text, "app: my-app")
}

func TestSet_QuotesAmbiguousScalars(t *testing.T) {
	doc, err := Load([]byte(secretYAML))
	require.NoError(t, err)

	doc.Data().Set("username", "true")
	doc.Data().Set("password", "12345")

	out, err := doc.Dump()
	require.NoError(t, err)

	reloaded, err := Load(out)
	require.NoError(t, err)

	// Values must still be strings after a round trip.
	value, _ := reloaded.Data().Get("username")
	assert.Equal(t, "true", value)
	value, _ = reloaded.Data().Get("password")
	assert.Equal(t, "12345", value)
}

func TestSet_MultilineValue(t *testing.T) {
	doc, err := Load([]byte(secretYAML))
	require.NoError(t, err)

	doc.Data().Set("password", "line one\nline two\n")

	out, err := doc.Dump()
	require.NoError(t, err)

	reloaded, err := Load(out)
	require.NoError(t, err)
	value, _ := reloaded.Data().Get("password")
	assert.Equal(t, "line one\nline two\n", value)
}

func TestSecretMetadata(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    SecretMetadata
		wantErr bool
	}{
		{
			name:    "name and namespace",
			content: "kind: SealedSecret\nmetadata:\n  name: db\n  namespace: staging\n",
			want:    SecretMetadata{Name: "db", Namespace: "staging"},
		},
		{
			name:    "namespace defaults",
			content: "kind: SealedSecret\nmetadata:\n  name: db\n",
			want:    SecretMetadata{Name: "db", Namespace: DefaultNamespace},
		},
		{
			name:    "missing name",
			content: "kind: SealedSecret\nmetadata:\n  namespace: staging\n",
			wantErr: true,
		},
		{
			name:    "missing metadata",
			content: "kind: SealedSecret\nspec: {}\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load([]byte(tt.content))
			require.NoError(t, err)

			got, err := doc.SecretMetadata()
			if tt.wantErr {
				assert.ErrorIs(t, err, kerrors.ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_BuildsManifest(t *testing.T) {
	doc := New("v1", KindSecret)
	metadata := doc.EnsureMapping("metadata")
	metadata.SetString("name", "generated")
	doc.EnsureData().Set("token", "dG9rZW4=")

	out, err := doc.Dump()
	require.NoError(t, err)

	reloaded, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, KindSecret, reloaded.Kind())

	meta, err := reloaded.SecretMetadata()
	require.NoError(t, err)
	assert.Equal(t, "generated", meta.Name)

	value, ok := reloaded.Data().Get("token")
	assert.True(t, ok)
	assert.Equal(t, "dG9rZW4=", value)
}

func TestData_Absent(t *testing.T) {
	doc, err := Load([]byte("kind: Secret\nmetadata:\n  name: x\n"))
	require.NoError(t, err)
	assert.Nil(t, doc.Data())
}
