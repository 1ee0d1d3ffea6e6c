package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arcigy/coldlead"
	"github.com/arcigy/coldlead/mock"
	"github.com/arcigy/coldlead/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenamer_Rename(t *testing.T) {
	t.Parallel()

	leads := func() []*coldlead.Lead {
		return []*coldlead.Lead{
			{
				ID:            1,
				Title:         "Parkety Vráble s.r.o.",
				Website:       "parkety-vrable.sk",
				CompanyName:   "Parkety Vrable",
				FirstSentence: "Dobrý deň. Páči sa mi, že v Parkety Vrable sa venujete pokládke a renovácii podláh.",
			},
			{ID: 2, Title: "Okná Novák", Website: "okna-novak.sk", CompanyName: "Okná Novák"},
			{ID: 3, Title: "Stavby", Website: "stavby.sk"},
		}
	}

	names := &mock.NameGenerator{
		GenerateNameFn: func(_ context.Context, title, _ string) (string, error) {
			switch title {
			case "Parkety Vráble s.r.o.":
				return "Parkety Vráble", nil
			case "Stavby":
				return "Stavby Kováč", nil
			}
			return title, nil
		},
	}

	t.Run("updates changed names and carries sentence over", func(t *testing.T) {
		t.Parallel()

		updates := make(map[int]coldlead.LeadUpdate)
		r := &pipeline.Renamer{
			Names: names,
			Leads: &mock.LeadService{
				UpdateLeadFn: func(_ context.Context, id int, upd coldlead.LeadUpdate) (*coldlead.Lead, error) {
					updates[id] = upd
					return &coldlead.Lead{ID: id}, nil
				},
			},
		}

		result, err := r.Rename(context.Background(), leads(), nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Updated)
		assert.Equal(t, 0, result.Failed)
		require.Len(t, result.Renames, 2)

		require.Contains(t, updates, 1)
		assert.Equal(t, "Parkety Vráble", *updates[1].CompanyName)
		assert.Equal(t, "Dobrý deň. Páči sa mi, že v Parkety Vráble sa venujete pokládke a renovácii podláh.", *updates[1].FirstSentence)

		require.Contains(t, updates, 3)
		assert.Equal(t, "Dobrý deň. Páči sa mi, že v Stavby Kováč sa venujete poskytovaniu kvalitných služieb.", *updates[3].FirstSentence)

		assert.NotContains(t, updates, 2, "unchanged name is not written")
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		t.Parallel()

		r := &pipeline.Renamer{
			Names:  names,
			Leads:  &mock.LeadService{},
			DryRun: true,
		}

		result, err := r.Rename(context.Background(), leads(), nil)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Updated)
		require.Len(t, result.Renames, 2)
		assert.Equal(t, "Parkety Vrable", result.Renames[0].OldName)
		assert.Equal(t, "Parkety Vráble", result.Renames[0].NewName)
	})

	t.Run("counts generator and store failures", func(t *testing.T) {
		t.Parallel()

		r := &pipeline.Renamer{
			Names: &mock.NameGenerator{
				GenerateNameFn: func(_ context.Context, title, _ string) (string, error) {
					if title == "Okná Novák" {
						return "", errors.New("quota exceeded")
					}
					return title + " Nové", nil
				},
			},
			Leads: &mock.LeadService{
				UpdateLeadFn: func(_ context.Context, id int, _ coldlead.LeadUpdate) (*coldlead.Lead, error) {
					if id == 3 {
						return nil, coldlead.Errorf(coldlead.ENOTFOUND, "lead not found")
					}
					return &coldlead.Lead{ID: id}, nil
				},
			},
		}

		result, err := r.Rename(context.Background(), leads(), nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 2, result.Failed)
	})

	t.Run("ignores empty generated name", func(t *testing.T) {
		t.Parallel()

		r := &pipeline.Renamer{
			Names: &mock.NameGenerator{
				GenerateNameFn: func(_ context.Context, _, _ string) (string, error) {
					return "  ", nil
				},
			},
			Leads: &mock.LeadService{},
		}

		result, err := r.Rename(context.Background(), leads(), nil)

		require.NoError(t, err)
		assert.Empty(t, result.Renames)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := &pipeline.Renamer{Names: names, Leads: &mock.LeadService{}}

		_, err := r.Rename(ctx, leads(), nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
