package impl

import (
	"context"
	"fmt"
	"testing"

	mockSvc "campnav/internal/mocks/service"

	"github.com/stretchr/testify/assert"
)

func TestEnrichEach_PreservesOrder(t *testing.T) {
	records := make([]*int, 50)
	for i := range records {
		records[i] = ptr(i)
	}

	views := enrichEach(context.Background(), records, func(_ context.Context, n *int) *string {
		return ptr(fmt.Sprintf("item-%d", *n))
	})

	assert.Len(t, views, len(records))
	for i, view := range views {
		assert.Equal(t, fmt.Sprintf("item-%d", i), *view)
	}
}

func TestEnrichEach_Empty(t *testing.T) {
	views := enrichEach(context.Background(), []*int{}, func(_ context.Context, n *int) *int { return n })

	assert.Empty(t, views)
}

func TestEnricher_FileURL(t *testing.T) {
	ctx := context.Background()
	storage := mockSvc.NewMockFileStorage(t)
	e := newEnricher(nil, storage, newDiscardLogger())

	assert.Nil(t, e.fileURL(ctx, ""))
	assert.Equal(t, "HTTPS://cdn.example.com/a.png", *e.fileURL(ctx, "HTTPS://cdn.example.com/a.png"))
	assert.Equal(t, "http://legacy.example.com/b.png", *e.fileURL(ctx, "http://legacy.example.com/b.png"))
}
