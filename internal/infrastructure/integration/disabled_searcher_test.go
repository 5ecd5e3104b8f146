package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmate/backend/internal/domain/shared"
)

func TestDisabledSearcher_AlwaysFails(t *testing.T) {
	searcher := NewDisabledSearcher()
	ctx := context.Background()

	_, addrErr := searcher.SearchByAddress(ctx, "월드컵로")
	_, kwErr := searcher.SearchByKeyword(ctx, "한빛유통")

	for _, err := range []error{addrErr, kwErr} {
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SEARCH_FAILED", domainErr.Code)
	}
}
