package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/pkg/errors"
)

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.True(t, errors.Is(err, code), "expected error code %s, got %v", code, err)
}

// In-memory repository fakes backing the usecase tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*entity.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

type fakeConversationRepo struct {
	mu            sync.Mutex
	conversations map[string]*entity.Conversation
	messages      *fakeMessageRepo
}

func newFakeConversationRepo(messages *fakeMessageRepo) *fakeConversationRepo {
	return &fakeConversationRepo{
		conversations: make(map[string]*entity.Conversation),
		messages:      messages,
	}
}

func (r *fakeConversationRepo) GetOrCreateDirect(ctx context.Context, conv *entity.Conversation) (*entity.Conversation, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.conversations[conv.ID]; ok {
		return existing, false, nil
	}
	now := time.Now()
	conv.CreatedAt = now
	conv.UpdatedAt = now
	r.conversations[conv.ID] = conv
	return conv, true, nil
}

func (r *fakeConversationRepo) GetOrCreatePublic(ctx context.Context) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.conversations[entity.PublicConversationID]; ok {
		return existing, nil
	}
	now := time.Now()
	conv := &entity.Conversation{
		ID:           entity.PublicConversationID,
		IsPublic:     true,
		Participants: []string{entity.PublicParticipant},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.conversations[conv.ID] = conv
	return conv, nil
}

func (r *fakeConversationRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	// Return a copy, the way a document store deserializes into a fresh
	// struct; mutating the result must not touch the stored state.
	clone := *conv
	return &clone, nil
}

func (r *fakeConversationRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Conversation
	for _, conv := range r.conversations {
		for _, p := range conv.Participants {
			if p == userID {
				result = append(result, conv)
				break
			}
		}
	}
	return result, nil
}

func (r *fakeConversationRepo) UpdateLastMessageIfNewer(ctx context.Context, conversationID string, lm *entity.LastMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.conversations[conversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	if conv.LastMessage != nil && lm.Timestamp.Before(conv.LastMessage.Timestamp) {
		return nil
	}
	conv.LastMessage = lm
	conv.UpdatedAt = time.Now()
	return nil
}

func (r *fakeConversationRepo) RecomputeLastMessage(ctx context.Context, conversationID string) error {
	latest, err := r.messages.Latest(ctx, conversationID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.conversations[conversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	if latest == nil {
		conv.LastMessage = nil
	} else {
		conv.LastMessage = &entity.LastMessage{
			Text:      latest.Text,
			Timestamp: latest.CreatedAt,
			SenderUID: latest.UserID,
		}
	}
	conv.UpdatedAt = time.Now()
	return nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[string][]*entity.Message
	lastTime time.Time
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string][]*entity.Message)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	// Timestamps must be strictly increasing for the since-queries to be
	// deterministic, even on a coarse clock.
	now := time.Now()
	if !now.After(r.lastTime) {
		now = r.lastTime.Add(time.Nanosecond)
	}
	r.lastTime = now
	message.CreatedAt = now
	r.messages[message.ConversationID] = append(r.messages[message.ConversationID], message)
	return nil
}

func (r *fakeMessageRepo) ListByConversation(ctx context.Context, conversationID string, since time.Time, lastID string) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Message
	for _, m := range r.messages[conversationID] {
		if !since.IsZero() {
			// With lastID supplied, keep messages tied with since so the
			// id drop below disambiguates instead of the filter skipping
			// them.
			if lastID != "" {
				if m.CreatedAt.Before(since) {
					continue
				}
			} else if !m.CreatedAt.After(since) {
				continue
			}
		}
		result = append(result, m)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	if lastID != "" {
		for i, m := range result {
			if m.ID == lastID {
				result = result[i+1:]
				break
			}
		}
	}
	return result, nil
}

func (r *fakeMessageRepo) GetByID(ctx context.Context, conversationID, messageID string) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages[conversationID] {
		if m.ID == messageID {
			return m, nil
		}
	}
	return nil, errors.NotFound("Message", nil)
}

func (r *fakeMessageRepo) Delete(ctx context.Context, conversationID, messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := r.messages[conversationID]
	for i, m := range msgs {
		if m.ID == messageID {
			r.messages[conversationID] = append(msgs[:i], msgs[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Message", nil)
}

func (r *fakeMessageRepo) Latest(ctx context.Context, conversationID string) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *entity.Message
	for _, m := range r.messages[conversationID] {
		if latest == nil || m.CreatedAt.After(latest.CreatedAt) {
			latest = m
		}
	}
	return latest, nil
}

func (r *fakeMessageRepo) CountSince(ctx context.Context, conversationID string, since time.Time, excludeUserID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, m := range r.messages[conversationID] {
		if m.UserID == excludeUserID {
			continue
		}
		if !since.IsZero() && !m.CreatedAt.After(since) {
			continue
		}
		count++
	}
	return count, nil
}

type fakeUnreadRepo struct {
	mu      sync.Mutex
	markers map[string]*entity.UnreadMarker
}

func newFakeUnreadRepo() *fakeUnreadRepo {
	return &fakeUnreadRepo{markers: make(map[string]*entity.UnreadMarker)}
}

func (r *fakeUnreadRepo) Get(ctx context.Context, userID, conversationID string) (*entity.UnreadMarker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.markers[entity.UnreadMarkerID(userID, conversationID)], nil
}

func (r *fakeUnreadRepo) Upsert(ctx context.Context, marker *entity.UnreadMarker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markers[entity.UnreadMarkerID(marker.UserID, marker.ConversationID)] = marker
	return nil
}

type fakeResourceRepo struct {
	mu        sync.Mutex
	resources map[string]*entity.Resource
}

func newFakeResourceRepo(resources ...*entity.Resource) *fakeResourceRepo {
	r := &fakeResourceRepo{resources: make(map[string]*entity.Resource)}
	for _, res := range resources {
		r.resources[res.ID] = res
	}
	return r
}

func (r *fakeResourceRepo) Create(ctx context.Context, resource *entity.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if resource.ID == "" {
		resource.ID = uuid.New().String()
	}
	resource.CreatedAt = time.Now()
	r.resources[resource.ID] = resource
	return nil
}

func (r *fakeResourceRepo) GetByID(ctx context.Context, id string) (*entity.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	resource, ok := r.resources[id]
	if !ok {
		return nil, errors.NotFound("Resource", nil)
	}
	return resource, nil
}

func (r *fakeResourceRepo) List(ctx context.Context) ([]*entity.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var resources []*entity.Resource
	for _, res := range r.resources {
		resources = append(resources, res)
	}
	return resources, nil
}

func (r *fakeResourceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resources, id)
	return nil
}

type fakeTodoRepo struct {
	mu    sync.Mutex
	todos map[string]*entity.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: make(map[string]*entity.Todo)}
}

func (r *fakeTodoRepo) Create(ctx context.Context, todo *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now
	r.todos[todo.ID] = todo
	return nil
}

func (r *fakeTodoRepo) GetByID(ctx context.Context, id string) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	todo, ok := r.todos[id]
	if !ok {
		return nil, errors.NotFound("Todo", nil)
	}
	return todo, nil
}

func (r *fakeTodoRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var todos []*entity.Todo
	for _, t := range r.todos {
		if t.UserID == userID {
			todos = append(todos, t)
		}
	}
	return todos, nil
}

func (r *fakeTodoRepo) Update(ctx context.Context, todo *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	todo.UpdatedAt = time.Now()
	r.todos[todo.ID] = todo
	return nil
}

func (r *fakeTodoRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.todos, id)
	return nil
}

type fakeAssistantClient struct {
	lastSystemPrompt string
	lastUserPrompt   string
	answer           string
	err              error
}

func (c *fakeAssistantClient) Answer(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	c.lastSystemPrompt = systemPrompt
	c.lastUserPrompt = userPrompt
	if c.err != nil {
		return "", c.err
	}
	return c.answer, nil
}
