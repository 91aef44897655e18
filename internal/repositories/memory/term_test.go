package memory

import (
	"context"
	"errors"
	"testing"

	"cloud-dictionary-api/internal/models"
	"cloud-dictionary-api/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTermRepository(
		models.NewTerm("EC2", "Elastic Compute Cloud"),
		models.NewTerm("S3", "Simple Storage Service"),
	)

	t.Run("GetReturnsCopy", func(t *testing.T) {
		term, err := repo.Get(ctx, "EC2")
		require.NoError(t, err)
		term.Definition = "mutated"

		again, err := repo.Get(ctx, "EC2")
		require.NoError(t, err)
		assert.Equal(t, "Elastic Compute Cloud", again.Definition)
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := repo.Get(ctx, "IAM")
		assert.True(t, repositories.IsNotFound(err))
	})

	t.Run("SearchKeepsInsertionOrder", func(t *testing.T) {
		_, err := repo.PutTerms(ctx, []models.Term{models.NewTerm("CloudFront", "content delivery network")})
		require.NoError(t, err)

		got, err := repo.Search(ctx, models.NewSearchQuery("", models.MatchFolded))
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"EC2", "S3", "CloudFront"}, []string{got[0].Term, got[1].Term, got[2].Term})
	})

	t.Run("InjectedFailure", func(t *testing.T) {
		repo.FailWith(errors.New("throttled"))
		defer repo.FailWith(nil)

		_, err := repo.Get(ctx, "EC2")
		assert.True(t, repositories.IsUpstream(err))

		_, err = repo.Search(ctx, models.NewSearchQuery("ec2", models.MatchFolded))
		assert.True(t, repositories.IsUpstream(err))
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.Get(cancelled, "EC2")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
