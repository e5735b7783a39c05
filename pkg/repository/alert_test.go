package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/politrend/pkg/domain"
)

func TestAlertRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	t0 := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	recs := []*domain.AlertRecord{
		{Timestamp: t0, EntityID: "e1", Topic: "Election Results", Category: domain.CategoryElections, Rank: 1, Status: domain.AlertSent, DeliveryID: "msg-1"},
		{Timestamp: t0.Add(time.Minute), EntityID: "e2", Topic: "Senate", Category: domain.CategoryCongress, Rank: 4, Status: domain.AlertFailed, Error: "smtp down"},
		{Timestamp: t0.Add(2 * time.Minute), EntityID: "e3", Topic: "Court", Category: domain.CategoryJudicial, Rank: 8, Status: domain.AlertWouldSend},
	}
	for _, rec := range recs {
		require.NoError(t, repos.Alert.AppendAlert(ctx, rec))
		assert.NotZero(t, rec.ID)
	}

	all, err := repos.Alert.GetAlerts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "e3", all[0].EntityID, "newest first")
	assert.Equal(t, *recs[0], all[2])
	assert.Equal(t, "smtp down", all[1].Error)

	limited, err := repos.Alert.GetAlerts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, domain.AlertWouldSend, limited[0].Status)
}

func TestAlertRepository_AppendOnly(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	rec := &domain.AlertRecord{Timestamp: time.Now(), EntityID: "e1", Topic: "Trump", Category: domain.CategoryWhiteHouse, Rank: 1, Status: domain.AlertSent}
	require.NoError(t, repos.Alert.AppendAlert(ctx, rec))

	_, err := repos.DB.ExecContext(ctx, "UPDATE alerts SET status = 'failed' WHERE id = ?", rec.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append-only")

	_, err = repos.DB.ExecContext(ctx, "DELETE FROM alerts WHERE id = ?", rec.ID)
	require.Error(t, err)

	all, err := repos.Alert.GetAlerts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.AlertSent, all[0].Status)
}
