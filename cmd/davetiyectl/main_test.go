package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"davetiye.link/pkg/eventcodec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"davetiyectl"}, args...))
	return out.String(), err
}

func TestEncodeDecode(t *testing.T) {
	out, err := run(t, "encode", "--names", "Anu & Raj", "--host", "Anu", "--date", "2025-12-20",
		"--template", "romantic", "--gift", "watch", "--gift", "travel", "--base-url", "https://davetiye.link/")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	token := lines[0]
	assert.True(t, eventcodec.Valid(token))
	assert.Equal(t, "intro:    https://davetiye.link/intro/"+token, lines[1])

	out, err = run(t, "decode", "https://davetiye.link/event/"+token)
	require.NoError(t, err)
	var rec eventcodec.EventRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, eventcodec.EventRecord{
		Names: "Anu & Raj", HostName: "Anu", Date: "2025-12-20", TemplateID: "romantic", Gifts: []string{"watch", "travel"},
	}, rec)
	assert.Contains(t, out, `"names": "Anu & Raj"`)
}

func TestEncodeRejectsBadDate(t *testing.T) {
	_, err := run(t, "encode", "--names", "A", "--host", "B", "--date", "2025-13-01")
	assert.Error(t, err)
}

func TestDecodeFailure(t *testing.T) {
	_, err := run(t, "decode", "!!!not-base64!!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invitation unavailable")

	token, err := eventcodec.Encode(eventcodec.EventRecord{Names: "Anu & Raj", HostName: "Anu", Date: "2025-12-20", TemplateID: "classic"})
	require.NoError(t, err)
	_, err = run(t, "decode", token[:8]+"\r\n\r\n"+token[8:])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidEncoding")
}

func TestCalendarGrid(t *testing.T) {
	out, err := run(t, "calendar", "--year", "2025", "--month", "7", "--selected", "2025-07-04")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "July 2025", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "(29) (30)   1 "), lines[2])
	assert.Contains(t, lines[2], "[ 4]")
	assert.True(t, strings.HasSuffix(lines[7], "( 9)"), lines[7])
}
