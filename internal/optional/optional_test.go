package optional_test

import (
	"encoding/json"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feedstream/backend/internal/optional"
)

type patch struct {
	XMLName xml.Name                  `json:"-" xml:"feedEntry"`
	Name    optional.Value[string]    `json:"name" xml:"name"`
	Flag    optional.Value[bool]      `json:"flag" xml:"flag"`
	At      optional.Value[time.Time] `json:"at" xml:"at"`
}

func TestValue_JSONAbsentNullAndValue(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"flag":true}`), &p))

	require.True(t, p.Name.IsSet())
	require.True(t, p.Name.IsNull())
	require.Nil(t, p.Name.Ptr())

	flag, ok := p.Flag.Get()
	require.True(t, ok)
	require.True(t, flag)

	require.False(t, p.At.IsSet())
	_, ok = p.At.Get()
	require.False(t, ok)
}

func TestValue_JSONTime(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"at":"2024-03-01T10:00:00Z"}`), &p))

	at, ok := p.At.Get()
	require.True(t, ok)
	require.True(t, at.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestValue_JSONTypeMismatch(t *testing.T) {
	var p patch
	require.Error(t, json.Unmarshal([]byte(`{"flag":"yes"}`), &p))
}

func TestValue_XMLPresentElements(t *testing.T) {
	var p patch
	body := `<feedEntry><name></name><flag>false</flag></feedEntry>`
	require.NoError(t, xml.Unmarshal([]byte(body), &p))

	name, ok := p.Name.Get()
	require.True(t, ok)
	require.Equal(t, "", name)

	flag, ok := p.Flag.Get()
	require.True(t, ok)
	require.False(t, flag)

	require.False(t, p.At.IsSet())
}

func TestValue_Marshal(t *testing.T) {
	p := patch{Name: optional.Of("jane"), Flag: optional.Null[bool]()}

	out, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"jane","flag":null,"at":null}`, string(out))

	out, err = xml.Marshal(p)
	require.NoError(t, err)
	require.Equal(t, `<feedEntry><name>jane</name></feedEntry>`, string(out))
}
