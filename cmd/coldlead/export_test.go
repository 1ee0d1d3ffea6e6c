package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcigy/coldlead"
	main "github.com/arcigy/coldlead/cmd/coldlead"
	"github.com/arcigy/coldlead/fs"
	"github.com/arcigy/coldlead/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportLeads() []*coldlead.Lead {
	return []*coldlead.Lead{
		{ID: 2, Title: "Plynár Bratislava", Category: "Plynoinštalatér", Phone: "+421 900 000 000"},
		{ID: 1, Title: "Okná Novák s.r.o.", Website: "https://okna-novak.sk", Abstract: "Firma sa špecializuje na výrobu okien a dverí."},
	}
}

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes csv from lead store", func(t *testing.T) {
		t.Parallel()

		leads := &mock.LeadService{
			FindLeadsFn: func(_ context.Context, _ coldlead.LeadFilter) ([]*coldlead.Lead, error) {
				return exportLeads(), nil
			},
		}
		output := filepath.Join(t.TempDir(), "leads.csv")
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Leads: leads}

		err := (&main.ExportCmd{Output: output}).Run(deps)

		require.NoError(t, err)
		data, err := os.ReadFile(output)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimPrefix(string(data), "\ufeff"), "\n")
		assert.Equal(t, "id,original_title,website,final_company_name,ai_first_sentence,email,phone,city,category", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "1,Okná Novák s.r.o.,https://okna-novak.sk,Okna Novak,"))
		assert.Contains(t, lines[2], "Dobrý deň. Páči sa mi, že v Plynár sa venujete inštaláciám a servisu plynových zariadení.")
		assert.Contains(t, stdout.String(), "Wrote 2 rows")
		assert.Contains(t, stdout.String(), "Sample: Okna Novak ->")
	})

	t.Run("reads leads from JSON dump", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "leads.json")
		require.NoError(t, fs.WriteLeads(input, exportLeads()))
		output := filepath.Join(dir, "leads.xlsx")
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		err := (&main.ExportCmd{Output: output, Input: input}).Run(deps)

		require.NoError(t, err)
		info, err := os.Stat(output)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})

	t.Run("records run when database is available", func(t *testing.T) {
		t.Parallel()

		var saved []*coldlead.ExportRow
		runs := &mock.RunService{
			CreateRunFn: func(_ context.Context, run *coldlead.Run) error {
				assert.Equal(t, coldlead.RunExport, run.Kind)
				run.ID = "run-1"
				return nil
			},
			SaveRowsFn: func(_ context.Context, runID string, rows []*coldlead.ExportRow) error {
				assert.Equal(t, "run-1", runID)
				saved = rows
				return nil
			},
			FinishRunFn: func(_ context.Context, id string, completed, failed int) (*coldlead.Run, error) {
				assert.Equal(t, 2, completed)
				assert.Equal(t, 0, failed)
				return &coldlead.Run{ID: id}, nil
			},
		}
		leads := &mock.LeadService{
			FindLeadsFn: func(_ context.Context, _ coldlead.LeadFilter) ([]*coldlead.Lead, error) {
				return exportLeads(), nil
			},
		}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Leads: leads, Runs: runs}

		err := (&main.ExportCmd{Output: filepath.Join(t.TempDir(), "out.csv")}).Run(deps)

		require.NoError(t, err)
		assert.Len(t, saved, 2)
	})

	t.Run("rejects unsupported output before loading leads", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Leads: &mock.LeadService{}}

		err := (&main.ExportCmd{Output: filepath.Join(t.TempDir(), "out.txt")}).Run(deps)

		assert.Equal(t, coldlead.EINVALID, coldlead.ErrorCode(err))
		assert.Contains(t, stderr.String(), ".csv or .xlsx")
	})

	t.Run("leaves no file when store fails", func(t *testing.T) {
		t.Parallel()

		leads := &mock.LeadService{
			FindLeadsFn: func(_ context.Context, _ coldlead.LeadFilter) ([]*coldlead.Lead, error) {
				return nil, coldlead.Errorf(coldlead.EINTERNAL, "status 502")
			},
		}
		output := filepath.Join(t.TempDir(), "out.csv")
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Leads: leads}

		err := (&main.ExportCmd{Output: output}).Run(deps)

		require.Error(t, err)
		assert.NoFileExists(t, output)
	})
}
