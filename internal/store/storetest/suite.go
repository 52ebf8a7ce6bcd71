package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizsite-api/internal/model"
	"bizsite-api/internal/store"
)

// Run exercises the store.Store contract against st. The subtests only
// compare against state they created, so st need not be empty.
func Run(t *testing.T, st store.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("appointments newest first", func(t *testing.T) {
		first := &model.Appointment{Name: "A", Phone: "1", Date: "2024-01-01", Service: "Haircut"}
		require.NoError(t, st.CreateAppointment(ctx, first))
		assert.NotEmpty(t, first.ID)
		assert.False(t, first.CreatedAt.IsZero())

		second := &model.Appointment{Name: "B", Phone: "2", Date: "2024-01-02", Service: "Shave"}
		require.NoError(t, st.CreateAppointment(ctx, second))

		list, err := st.ListAppointments(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(list), 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)
		assert.Equal(t, "Haircut", list[1].Service)
		assert.True(t, first.CreatedAt.Equal(list[1].CreatedAt))
	})

	t.Run("messages newest first", func(t *testing.T) {
		msg := &model.Message{Name: "N", Email: "n@example.com", Phone: "3", Message: "hello"}
		require.NoError(t, st.CreateMessage(ctx, msg))

		list, err := st.ListMessages(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, list)
		assert.Equal(t, msg.ID, list[0].ID)
		assert.Equal(t, "hello", list[0].Message)
	})

	t.Run("blog lifecycle", func(t *testing.T) {
		b := &model.BlogPost{Title: "t", Date: "2024-01-01", Image: "http://x/img.png", Content: "body"}
		require.NoError(t, st.CreateBlogPost(ctx, b))

		got, err := st.GetBlogPost(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "body", got.Content)

		list, err := st.ListBlogPosts(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, list)
		assert.Equal(t, b.ID, list[0].ID)

		title := "renamed"
		upd, err := st.UpdateBlogPost(ctx, b.ID, model.BlogPatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "renamed", upd.Title)
		assert.Equal(t, "body", upd.Content)
		assert.True(t, b.CreatedAt.Equal(upd.CreatedAt))

		same, err := st.UpdateBlogPost(ctx, b.ID, model.BlogPatch{})
		require.NoError(t, err)
		assert.Equal(t, "renamed", same.Title)

		require.NoError(t, st.DeleteBlogPost(ctx, b.ID))
		_, err = st.GetBlogPost(ctx, b.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("blog missing id", func(t *testing.T) {
		before, err := st.ListBlogPosts(ctx)
		require.NoError(t, err)

		missing := store.NewID()
		_, err = st.GetBlogPost(ctx, missing)
		assert.ErrorIs(t, err, store.ErrNotFound)

		title := "x"
		_, err = st.UpdateBlogPost(ctx, missing, model.BlogPatch{Title: &title})
		assert.ErrorIs(t, err, store.ErrNotFound)

		assert.ErrorIs(t, st.DeleteBlogPost(ctx, missing), store.ErrNotFound)

		after, err := st.ListBlogPosts(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("open hour upsert by day", func(t *testing.T) {
		day := "Day-" + store.NewID()
		first := &model.OpenHour{Day: day, Open: "09:00", Close: "17:00"}
		require.NoError(t, st.UpsertOpenHour(ctx, first))
		assert.NotEmpty(t, first.ID)

		second := &model.OpenHour{Day: day, Open: "10:00", Close: "18:00"}
		require.NoError(t, st.UpsertOpenHour(ctx, second))
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "10:00", second.Open)

		list, err := st.ListOpenHours(ctx)
		require.NoError(t, err)
		var matches []model.OpenHour
		for _, h := range list {
			if h.Day == day {
				matches = append(matches, h)
			}
		}
		require.Len(t, matches, 1)
		assert.Equal(t, "10:00", matches[0].Open)
		assert.Equal(t, "18:00", matches[0].Close)
	})

	t.Run("open hour replace", func(t *testing.T) {
		h := &model.OpenHour{Day: "Rep-" + store.NewID(), Open: "08:00", Close: "12:00"}
		require.NoError(t, st.UpsertOpenHour(ctx, h))

		repl := &model.OpenHour{ID: h.ID, Day: h.Day + "-b", Open: "07:00", Close: "11:00"}
		require.NoError(t, st.ReplaceOpenHour(ctx, repl))

		list, err := st.ListOpenHours(ctx)
		require.NoError(t, err)
		var found bool
		for _, o := range list {
			if o.ID == h.ID {
				found = true
				assert.Equal(t, *repl, o)
			}
		}
		assert.True(t, found)

		err = st.ReplaceOpenHour(ctx, &model.OpenHour{ID: store.NewID(), Day: "nope"})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, st.Ping(ctx))
	})
}
