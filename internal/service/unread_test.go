package service_test

import (
	"sync"
	"testing"

	"lido-club-backend/internal/database/models"
	"lido-club-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sum(m map[uuid.UUID]int) int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

func TestUnreadTracker(t *testing.T) {
	u := service.NewUnreadTracker()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	u.Increment(a)
	u.Increment(a)
	u.Increment(b)
	u.Increment(c)
	assert.Equal(t, 2, u.Count(a))
	assert.Equal(t, 4, u.Total())

	u.Reset(a)
	assert.Equal(t, 0, u.Count(a))
	assert.Equal(t, 2, u.Total())

	u.Retain([]uuid.UUID{a, b})
	assert.Equal(t, 0, u.Count(c))
	assert.Equal(t, 1, u.Total())
	assert.Equal(t, u.Total(), sum(u.Snapshot()))
}

func TestUnreadTracker_ConcurrentIncrements(t *testing.T) {
	u := service.NewUnreadTracker()
	teams := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	var wg sync.WaitGroup
	for i := 0; i < 300; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u.Increment(teams[i%len(teams)])
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 300, u.Total())
	assert.Equal(t, u.Total(), sum(u.Snapshot()))
}

func TestMessageList(t *testing.T) {
	team := uuid.New()
	m1 := models.ChatMessage{ID: uuid.New(), TeamID: team, Message: "hej"}
	m2 := models.ChatMessage{ID: uuid.New(), TeamID: team, Message: "kamp i morgen"}

	l := service.NewMessageList()
	l.Replace(team, []models.ChatMessage{m1, m1})
	assert.Equal(t, team, l.Team())
	assert.Equal(t, 1, l.Len())

	assert.True(t, l.Append(m2))
	assert.False(t, l.Append(m2))
	assert.Equal(t, []models.ChatMessage{m1, m2}, l.Messages())

	other := uuid.New()
	l.Replace(other, nil)
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Append(m1))
}

func TestMessageList_MessagesIsACopy(t *testing.T) {
	team := uuid.New()
	m1 := models.ChatMessage{ID: uuid.New(), TeamID: team, Message: "hej"}

	l := service.NewMessageList()
	l.Replace(team, []models.ChatMessage{m1})

	got := l.Messages()
	got[0].Message = "ændret"
	got = append(got, models.ChatMessage{ID: uuid.New()})

	assert.Equal(t, "hej", l.Messages()[0].Message)
	assert.Equal(t, 1, l.Len())
}
