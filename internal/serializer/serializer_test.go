package serializer_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studyhub/backend/internal/models"
	"studyhub/backend/internal/serializer"
	"studyhub/backend/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database-backed test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lobby{},
		&models.LobbyMembership{},
		&models.Post{},
		&models.Comment{},
	))

	err = db.Exec(
		"TRUNCATE TABLE course_users, lobby_memberships, comments, posts, lobbies, courses, users RESTART IDENTITY",
	).Error
	require.NoError(t, err)

	return store.New(db)
}

func TestFullUserOfFreshUserHasEmptyLists(t *testing.T) {
	s := newTestStore(t)
	sz := serializer.New(s)

	user, err := s.CreateUser("Ada")
	require.NoError(t, err)

	full, err := sz.FullUser(user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, full.ID)
	assert.Equal(t, "Ada", full.Name)

	// Empty association lists must serialize as [], never null.
	raw, err := json.Marshal(full)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "Ada",
		"courses": [],
		"lobbies": [],
		"posts": [],
		"comments": []
	}`, string(raw))
}

func TestSimpleIsSubsetOfFull(t *testing.T) {
	s := newTestStore(t)
	sz := serializer.New(s)

	user, err := s.CreateUser("Ada")
	require.NoError(t, err)
	full, err := sz.FullUser(user)
	require.NoError(t, err)
	simple := serializer.SimpleUser(user)

	var fullFields, simpleFields map[string]any
	fullRaw, err := json.Marshal(full)
	require.NoError(t, err)
	simpleRaw, err := json.Marshal(simple)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(fullRaw, &fullFields))
	require.NoError(t, json.Unmarshal(simpleRaw, &simpleFields))

	for name, value := range simpleFields {
		assert.Contains(t, fullFields, name)
		assert.Equal(t, value, fullFields[name])
	}
}

func TestSimpleLobbyNestsCourse(t *testing.T) {
	s := newTestStore(t)
	sz := serializer.New(s)

	course, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)
	lobby, err := s.CreateLobby("study session", "Olin 155", 5, course.ID)
	require.NoError(t, err)

	simple, err := sz.SimpleLobby(lobby)
	require.NoError(t, err)
	assert.Equal(t, "study session", simple.Description)
	assert.Equal(t, "Olin 155", simple.Location)
	assert.Equal(t, 5, simple.MaxPeople)
	assert.Equal(t, serializer.CourseSimple{ID: course.ID, Code: "CS1", Name: "Intro"}, simple.Course)
}

func TestFullLobbySplitsOwnerAndUsers(t *testing.T) {
	s := newTestStore(t)
	sz := serializer.New(s)

	course, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)
	lobby, err := s.CreateLobby("study session", "Olin 155", 5, course.ID)
	require.NoError(t, err)

	ada, err := s.CreateUser("Ada")
	require.NoError(t, err)
	grace, err := s.CreateUser("Grace")
	require.NoError(t, err)
	_, err = s.AddUserToLobby(lobby.ID, ada.ID, models.MembershipTypeOwner)
	require.NoError(t, err)
	_, err = s.AddUserToLobby(lobby.ID, grace.ID, models.MembershipTypeUser)
	require.NoError(t, err)

	full, err := sz.FullLobby(lobby)
	require.NoError(t, err)
	assert.Equal(t, []serializer.UserSimple{{ID: ada.ID, Name: "Ada"}}, full.Owner)
	assert.Equal(t, []serializer.UserSimple{{ID: grace.ID, Name: "Grace"}}, full.Users)
	assert.Equal(t, serializer.CourseSimple{ID: course.ID, Code: "CS1", Name: "Intro"}, full.Course)
}

func TestFullPostNestsCommentsInSimpleForm(t *testing.T) {
	s := newTestStore(t)
	sz := serializer.New(s)

	author, err := s.CreateUser("Ada")
	require.NoError(t, err)
	post, err := s.CreatePost("notes", "week 3 notes attached", author.ID)
	require.NoError(t, err)
	comment, err := s.CreateComment("thanks", author.ID, post.ID)
	require.NoError(t, err)

	full, err := sz.FullPost(post)
	require.NoError(t, err)
	assert.Equal(t, serializer.UserSimple{ID: author.ID, Name: "Ada"}, full.User)
	// Nested comments carry id and content only, no user or post.
	assert.Equal(t, []serializer.CommentSimple{{ID: comment.ID, Content: "thanks"}}, full.Comments)
}

func TestFullComment(t *testing.T) {
	s := newTestStore(t)
	sz := serializer.New(s)

	author, err := s.CreateUser("Ada")
	require.NoError(t, err)
	post, err := s.CreatePost("notes", "week 3 notes attached", author.ID)
	require.NoError(t, err)
	comment, err := s.CreateComment("thanks", author.ID, post.ID)
	require.NoError(t, err)

	full, err := sz.FullComment(comment)
	require.NoError(t, err)
	assert.Equal(t, "thanks", full.Content)
	assert.Equal(t, serializer.UserSimple{ID: author.ID, Name: "Ada"}, full.User)
	assert.Equal(t, serializer.PostSimple{ID: post.ID, Title: "notes", Content: "week 3 notes attached"}, full.Post)
}

func TestFullUserIncludesEverythingOnce(t *testing.T) {
	s := newTestStore(t)
	sz := serializer.New(s)

	course, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)
	lobby, err := s.CreateLobby("study session", "Olin 155", 5, course.ID)
	require.NoError(t, err)
	user, err := s.CreateUser("Ada")
	require.NoError(t, err)

	require.NoError(t, s.AddUserToCourse(course.ID, user.ID))
	_, err = s.AddUserToLobby(lobby.ID, user.ID, models.MembershipTypeOwner)
	require.NoError(t, err)
	post, err := s.CreatePost("notes", "week 3 notes attached", user.ID)
	require.NoError(t, err)
	comment, err := s.CreateComment("follow-up", user.ID, post.ID)
	require.NoError(t, err)

	full, err := sz.FullUser(user)
	require.NoError(t, err)
	assert.Equal(t, []serializer.CourseSimple{{ID: course.ID, Code: "CS1", Name: "Intro"}}, full.Courses)
	require.Len(t, full.Lobbies, 1)
	assert.Equal(t, lobby.ID, full.Lobbies[0].ID)
	assert.Equal(t, course.ID, full.Lobbies[0].Course.ID)
	assert.Equal(t, []serializer.PostSimple{{ID: post.ID, Title: "notes", Content: "week 3 notes attached"}}, full.Posts)
	assert.Equal(t, []serializer.CommentSimple{{ID: comment.ID, Content: "follow-up"}}, full.Comments)
}
