package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSeasonEpisode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SeasonEpisode
		wantErr bool
	}{
		{"upper", "Show.S02E02.1080p", SeasonEpisode{"02", "02"}, false},
		{"lower", "show.s02e02.1080p", SeasonEpisode{"02", "02"}, false},
		{"mixed", "Show.S02e02.1080p", SeasonEpisode{"02", "02"}, false},
		{"padding kept", "S.W.A.T.2017.S07E10.1080p_HDTV", SeasonEpisode{"07", "10"}, false},
		{"first marker wins", "Show.S01E05E06", SeasonEpisode{"01", "05"}, false},
		{"embedded", "xs10e21x", SeasonEpisode{"10", "21"}, false},
		{"single digit", "Show.S1E2", SeasonEpisode{}, true},
		{"crossed format", "Show.1x02", SeasonEpisode{}, true},
		{"movie", "Our Wedding 2019", SeasonEpisode{}, true},
		{"empty", "", SeasonEpisode{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSeasonEpisode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPatternNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeasonEpisode_String(t *testing.T) {
	assert.Equal(t, "S07E10", SeasonEpisode{Season: "07", Episode: "10"}.String())
}

func TestTitleBeforeSeasonEpisode(t *testing.T) {
	assert.Equal(t, "The.Mandalorian.", TitleBeforeSeasonEpisode("The.Mandalorian.S02E02.1080p.mkv"))
	assert.Equal(t, "Our Wedding 2019", TitleBeforeSeasonEpisode("Our Wedding 2019"))
}
