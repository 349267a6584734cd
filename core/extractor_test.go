package core

import (
	"regexp"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var handlePattern = regexp.MustCompile(`^[a-z0-9._]{3,30}$`)

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"clean handle", "alice", "alice", true},
		{"uppercase and punctuation", "BOB!!", "bob", true},
		{"keeps dots and underscores", "Jane.Doe_99", "jane.doe_99", true},
		{"strips at sign", "@carol", "carol", true},
		{"strips emoji", "🌟dave🌟", "dave", true},
		{"too short", "c", "", false},
		{"two chars after cleaning", "a-b", "", false},
		{"exactly three", "abc", "abc", true},
		{"exactly thirty", strings.Repeat("x", 30), strings.Repeat("x", 30), true},
		{"thirty one", strings.Repeat("x", 31), "", false},
		{"only separators", "!!! ---", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeHandle(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractHandles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "following example",
			input: "alice\nBOB!!\nc",
			want:  []string{"alice", "bob"},
		},
		{
			name:  "followers example",
			input: "alice\nbob\ncarol",
			want:  []string{"alice", "bob", "carol"},
		},
		{
			name:  "display name and handle that fit together are joined",
			input: "John Doe | @john_doe_23",
			want:  []string{"johndoejohn_doe_23"},
		},
		{
			name:  "display name before handle takes the first token",
			input: "Johnathan Doe-Smithson | @john_doe_23",
			want:  []string{"johnathan"},
		},
		{
			name:  "whole line wins over first token",
			input: "Jane Doe",
			want:  []string{"janedoe"},
		},
		{
			name:  "crlf line endings",
			input: "alice\r\nbob\r\n",
			want:  []string{"alice", "bob"},
		},
		{
			name:  "blank and whitespace lines are skipped",
			input: "\n   \n\talice\t\n\n",
			want:  []string{"alice"},
		},
		{
			name:  "duplicates collapse",
			input: "alice\nALICE\n@alice",
			want:  []string{"alice"},
		},
		{
			name:  "leading separator leaves an empty first token",
			input: "• " + strings.Repeat("averyverylongname ", 3),
			want:  []string{},
		},
		{
			name:  "first token too short",
			input: "ab " + strings.Repeat("z", 40),
			want:  []string{},
		},
		{
			name:  "byte order mark is trimmed",
			input: "\uFEFFsome.user " + strings.Repeat("z", 40),
			want:  []string{"some.user"},
		},
		{
			name:  "next line and no-break space are trimmed",
			input: "\u0085\u00A0some.user " + strings.Repeat("z", 40),
			want:  []string{"some.user"},
		},
		{
			name:  "empty text",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractHandles(tt.input)
			assert.ElementsMatch(t, tt.want, got.Slice())
		})
	}
}

func TestExtractHandlesOutputIsAlwaysValid(t *testing.T) {
	check := func(lines []string) bool {
		for _, h := range ExtractHandles(strings.Join(lines, "\n")).Slice() {
			if !handlePattern.MatchString(h) {
				t.Logf("invalid handle %q", h)
				return false
			}
		}
		return true
	}

	require.NoError(t, quick.Check(check, nil))
}

func TestExtractHandlesIsIdempotentOnCleanInput(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789._"

	check := func(seeds [][]byte) bool {
		want := NewHandleSet()
		var lines []string

		for _, seed := range seeds {
			if len(seed) < MinHandleLength {
				continue
			}
			if len(seed) > MaxHandleLength {
				seed = seed[:MaxHandleLength]
			}

			var b strings.Builder
			for _, c := range seed {
				b.WriteByte(alphabet[int(c)%len(alphabet)])
			}

			want.Add(b.String())
			lines = append(lines, b.String())
		}

		got := ExtractHandles(strings.Join(lines, "\n"))
		return assert.ObjectsAreEqual(want, got)
	}

	require.NoError(t, quick.Check(check, nil))
}
