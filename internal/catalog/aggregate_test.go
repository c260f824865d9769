package catalog

import (
	"testing"

	"shop-catalog-manager/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElectThumbnail(t *testing.T) {
	t.Run("empty set has no thumbnail", func(t *testing.T) {
		assert.Nil(t, electThumbnail(nil))
		assert.Nil(t, electThumbnail([]entity.Image{}))
	})

	t.Run("the main image wins", func(t *testing.T) {
		images := []entity.Image{
			{Id: "i1", Main: false},
			{Id: "i2", Main: true},
			{Id: "i3", Main: false},
		}
		thumb := electThumbnail(images)
		require.NotNil(t, thumb)
		assert.Equal(t, "i2", thumb.Id)
	})

	t.Run("no main falls back to insertion order", func(t *testing.T) {
		images := []entity.Image{
			{Id: "i1", Main: false},
			{Id: "i2", Main: false},
		}
		thumb := electThumbnail(images)
		require.NotNil(t, thumb)
		assert.Equal(t, "i1", thumb.Id)
	})

	t.Run("several mains picks the first deterministically", func(t *testing.T) {
		images := []entity.Image{
			{Id: "i1", Main: false},
			{Id: "i2", Main: true},
			{Id: "i3", Main: true},
		}
		for i := 0; i < 10; i++ {
			thumb := electThumbnail(images)
			require.NotNil(t, thumb)
			assert.Equal(t, "i2", thumb.Id)
		}
	})
}

func TestAttachChildren(t *testing.T) {
	products := []entity.Product{
		{Id: "p1"},
		{Id: "p2"},
	}
	comments := []entity.Comment{
		{Id: "c1", ProductId: "p1"},
		{Id: "c2", ProductId: "p1"},
		{Id: "c3", ProductId: "orphan"},
	}
	images := []entity.Image{
		{Id: "i1", ProductId: "p1", Main: false},
		{Id: "i2", ProductId: "p1", Main: true},
	}

	out := attachChildren(products, comments, images)
	require.Len(t, out, 2)

	p1 := out[0]
	assert.Len(t, p1.Comments, 2)
	assert.Len(t, p1.Images, 2)
	require.NotNil(t, p1.Thumbnail)
	assert.Equal(t, "i2", p1.Thumbnail.Id)

	// A product with no children gets empty slices, not nil: readers can
	// tell "fetched, none exist" from "not fetched".
	p2 := out[1]
	assert.NotNil(t, p2.Comments)
	assert.Empty(t, p2.Comments)
	assert.NotNil(t, p2.Images)
	assert.Empty(t, p2.Images)
	assert.Nil(t, p2.Thumbnail)
}

func TestAttachChildren_OrphansAreDropped(t *testing.T) {
	out := attachChildren(
		[]entity.Product{{Id: "p1"}},
		[]entity.Comment{{Id: "c1", ProductId: "other"}},
		[]entity.Image{{Id: "i1", ProductId: "other"}},
	)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Comments)
	assert.Empty(t, out[0].Images)
}
