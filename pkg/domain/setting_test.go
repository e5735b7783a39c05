package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsUpdate_Apply(t *testing.T) {
	base := Settings{
		Recipient:         "ops@example.com",
		MinRank:           20,
		EnabledCategories: []Category{CategoryElections},
		Frequency:         FrequencyInstant,
	}

	t.Run("empty update keeps everything", func(t *testing.T) {
		assert.Equal(t, base, SettingsUpdate{}.Apply(base))
	})

	t.Run("partial update", func(t *testing.T) {
		minRank := 5
		res := SettingsUpdate{MinRank: &minRank}.Apply(base)
		assert.Equal(t, 5, res.MinRank)
		assert.Equal(t, base.Recipient, res.Recipient)
		assert.Equal(t, base.EnabledCategories, res.EnabledCategories)
		assert.Equal(t, base.Frequency, res.Frequency)
	})

	t.Run("full update", func(t *testing.T) {
		recipient := " news@example.com "
		minRank := 3
		cats := []Category{CategoryCongress, CategoryEconomy}
		freq := FrequencyBatch
		res := SettingsUpdate{Recipient: &recipient, MinRank: &minRank, EnabledCategories: &cats, Frequency: &freq}.Apply(base)
		assert.Equal(t, Settings{
			Recipient:         "news@example.com",
			MinRank:           3,
			EnabledCategories: []Category{CategoryCongress, CategoryEconomy},
			Frequency:         FrequencyBatch,
		}, res)
	})

	t.Run("does not alias categories", func(t *testing.T) {
		res := SettingsUpdate{}.Apply(base)
		res.EnabledCategories[0] = CategoryGeneral
		assert.Equal(t, CategoryElections, base.EnabledCategories[0])
	})

	t.Run("empty category list disables all", func(t *testing.T) {
		cats := []Category{}
		res := SettingsUpdate{EnabledCategories: &cats}.Apply(base)
		require.NotNil(t, res.EnabledCategories)
		assert.Empty(t, res.EnabledCategories)
	})
}

func TestSettings_Validate(t *testing.T) {
	valid := Settings{MinRank: 10, EnabledCategories: []Category{CategoryJudicial}, Frequency: FrequencyInstant}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(s *Settings)
		errMsg string
	}{
		{"min rank", func(s *Settings) { s.MinRank = 0 }, "min_rank"},
		{"category", func(s *Settings) { s.EnabledCategories = []Category{"Sports"} }, "unknown category"},
		{"frequency", func(s *Settings) { s.Frequency = "weekly" }, "unknown frequency"},
		{"recipient", func(s *Settings) { s.Recipient = "not an address" }, "recipient"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.modify(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}

	chat := valid
	chat.Recipient = "-100123456"
	assert.NoError(t, chat.Validate())
}

func TestTopicKey(t *testing.T) {
	assert.Equal(t, "election results", TopicKey("  Election RESULTS "))
	assert.Empty(t, TopicKey("   "))
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("Sports").Valid())
}
