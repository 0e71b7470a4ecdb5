package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/ctt/internal/model"
)

func plainCLI() (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCLIFormatter(&Formatter{Writer: &buf, Format: FormatCLI, ColorMode: ColorNever}), &buf
}

func jsonFormatter() (*JSONFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewJSONFormatter(&Formatter{Writer: &buf, Format: FormatJSON}), &buf
}

func lastUsed(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.NotNil(t, f)
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("plain_disables_color", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways, Format: FormatPlain}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{Writer: &buf, ColorMode: ColorAuto}
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterPrinting(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	f.Print("a")
	f.Println("b")
	f.Printf("%s=%d", "c", 1)
	assert.Equal(t, "ab\nc=1", buf.String())
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	require.NoError(t, f.JSON(map[string]string{"key": "value"}))
	assert.Contains(t, buf.String(), `"key": "value"`)
}

// =============================================================================
// Time Formatting Tests
// =============================================================================

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatElapsed(0))
	assert.Equal(t, "01:01:01", FormatElapsed(3661))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{60 * time.Second, "1m"},
		{90 * time.Second, "1m 30s"},
		{60 * time.Minute, "1h"},
		{90 * time.Minute, "1h 30m"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}

func TestFormatCommentTime(t *testing.T) {
	tests := []struct {
		tm       time.Time
		expected string
	}{
		{time.Date(2024, 3, 15, 10, 4, 0, 0, time.Local), "Mar 15, 10:04 AM"},
		{time.Date(2024, 12, 1, 15, 30, 0, 0, time.Local), "Dec 1, 03:30 PM"},
		{time.Date(2024, 1, 9, 0, 5, 0, 0, time.Local), "Jan 9, 12:05 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCommentTime(tt.tm))
		})
	}
}

func TestFormatTime(t *testing.T) {
	tm := time.Date(2024, 1, 15, 14, 30, 45, 0, time.Local)
	assert.Equal(t, "2024-01-15 14:30:45", FormatTime(tm))
}

// =============================================================================
// CLIFormatter Tests
// =============================================================================

func TestCLIMessages(t *testing.T) {
	c, buf := plainCLI()

	c.Title("Title")
	c.Success("done")
	c.Warning("careful")
	c.Error("broken")
	c.Muted("quiet")

	assert.Equal(t, "Title\n✓ done\n⚠ careful\n✗ broken\nquiet\n", buf.String())
}

func TestCLIStyledHelpersWithoutColor(t *testing.T) {
	c, _ := plainCLI()
	assert.Equal(t, "Acme", c.CompanyName("Acme"))
	assert.Equal(t, "00:00:01", c.Duration("00:00:01"))
	assert.Equal(t, "note", c.Note("note"))
	assert.Equal(t, "★", c.Star(true))
	assert.Equal(t, " ", c.Star(false))
}

func TestCLIPrintStatus(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		c, buf := plainCLI()
		c.PrintStatus(nil, 0)
		assert.Contains(t, buf.String(), "No company is being tracked.")
	})

	t.Run("tracking", func(t *testing.T) {
		c, buf := plainCLI()
		c.PrintStatus(&model.Company{ID: 1, Name: "Acme"}, 3)
		assert.Contains(t, buf.String(), "Currently tracking: Acme")
		assert.Contains(t, buf.String(), "Elapsed: 00:00:03")
	})
}

func TestCLIPrintCompanies(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c, buf := plainCLI()
		c.PrintCompanies(nil, nil)
		assert.Contains(t, buf.String(), "No companies found.")
	})

	t.Run("table", func(t *testing.T) {
		c, buf := plainCLI()
		used := time.Date(2024, 3, 15, 10, 4, 0, 0, time.Local)
		c.PrintCompanies([]model.Company{
			{ID: 1, Name: "Google", IsFavorite: true},
			{ID: 6, Name: "Microsoft", LastUsed: lastUsed(used)},
		}, model.TimeLog{6: 61})

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[0], "NAME")
		assert.Contains(t, lines[2], "★")
		assert.Contains(t, lines[2], "Google")
		assert.Contains(t, lines[2], "00:00:00")
		assert.Contains(t, lines[3], "Microsoft")
		assert.Contains(t, lines[3], "00:01:01")
		assert.Contains(t, lines[3], "Mar 15, 10:04 AM")
		googleCol := utf8.RuneCountInString(lines[2][:strings.Index(lines[2], "Google")])
		msCol := utf8.RuneCountInString(lines[3][:strings.Index(lines[3], "Microsoft")])
		assert.Equal(t, googleCol, msCol)
	})
}

func TestCLIPrintCompanyAdded(t *testing.T) {
	c, buf := plainCLI()
	c.PrintCompanyAdded(model.Company{ID: 42, Name: "Acme"})
	assert.Equal(t, "✓ Added Acme (id 42)\n", buf.String())
}

func TestCLIPrintComments(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c, buf := plainCLI()
		c.PrintComments(nil, nil)
		assert.Contains(t, buf.String(), "No notes yet.")
	})

	t.Run("multiline_and_unknown_company", func(t *testing.T) {
		c, buf := plainCLI()
		ts := time.Date(2024, 3, 15, 10, 4, 0, 0, time.Local).UnixMilli()
		c.PrintComments([]model.Comment{
			{ID: 7, CompanyID: 1, Text: "one\ntwo", Timestamp: ts},
			{ID: 8, CompanyID: 99, Text: "orphan", Timestamp: ts},
		}, map[int64]string{1: "Acme"})

		out := buf.String()
		assert.Contains(t, out, "Mar 15, 10:04 AM  Acme  (id 7)")
		assert.Contains(t, out, "  one\n  two\n")
		assert.Contains(t, out, "#99")
	})
}

func TestPrintTableEmpty(t *testing.T) {
	c, buf := plainCLI()
	c.PrintTable([]string{"A"}, nil)
	assert.Empty(t, buf.String())
}

// =============================================================================
// JSONFormatter Tests
// =============================================================================

func TestNewCompanyOutput(t *testing.T) {
	used := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	out := NewCompanyOutput(model.Company{ID: 1, Name: "Acme", IsFavorite: true, LastUsed: lastUsed(used)}, 90)

	assert.Equal(t, int64(1), out.ID)
	assert.True(t, out.IsFavorite)
	assert.Equal(t, int64(90), out.ElapsedSeconds)
	assert.Equal(t, "00:01:30", out.Elapsed)
	assert.NotEmpty(t, out.LastUsed)

	unused := NewCompanyOutput(model.Company{ID: 2, Name: "New"}, 0)
	assert.Empty(t, unused.LastUsed)
}

func TestJSONPrintStatus(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		j, buf := jsonFormatter()
		require.NoError(t, j.PrintStatus(nil, 0))

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, "idle", resp.Status)
		assert.Nil(t, resp.Company)
	})

	t.Run("tracking", func(t *testing.T) {
		j, buf := jsonFormatter()
		require.NoError(t, j.PrintStatus(&model.Company{ID: 3, Name: "Amazon"}, 5))

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, "tracking", resp.Status)
		require.NotNil(t, resp.Company)
		assert.Equal(t, "Amazon", resp.Company.Name)
		assert.Equal(t, int64(5), resp.Company.ElapsedSeconds)
	})
}

func TestJSONPrintCompanies(t *testing.T) {
	j, buf := jsonFormatter()
	require.NoError(t, j.PrintCompanies(model.SeedCompanies(), model.TimeLog{1: 10}))

	var resp CompaniesResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 7, resp.TotalCount)
	assert.Equal(t, int64(10), resp.Companies[0].ElapsedSeconds)
}

func TestJSONPrintComments(t *testing.T) {
	j, buf := jsonFormatter()
	require.NoError(t, j.PrintComments(
		[]model.Comment{{ID: 1, CompanyID: 2, Text: "x", Timestamp: 0}},
		map[int64]string{2: "Facebook"}))

	var resp CommentsResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, "Facebook", resp.Notes[0].Company)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestJSONSingleItems(t *testing.T) {
	j, buf := jsonFormatter()
	require.NoError(t, j.PrintCompany(model.Company{ID: 1, Name: "Acme"}, 0))
	assert.Contains(t, buf.String(), `"name": "Acme"`)

	buf.Reset()
	require.NoError(t, j.PrintComment(model.Comment{ID: 5, CompanyID: 1, Text: "hi"}, "Acme"))
	assert.Contains(t, buf.String(), `"text": "hi"`)
}

func TestJSONPrintError(t *testing.T) {
	j, buf := jsonFormatter()
	require.NoError(t, j.PrintError("error", "boom", "try again"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "boom", resp.Error)
	assert.Equal(t, "try again", resp.Message)
}
