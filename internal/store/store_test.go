package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/backend/internal/models"
	"studyhub/backend/internal/store"
)

func TestCreateAndGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	course, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)
	assert.NotZero(t, course.ID)

	got, err := s.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS1", got.Code)
	assert.Equal(t, "Intro", got.Name)

	user, err := s.CreateUser("Ada")
	require.NoError(t, err)
	gotUser, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", gotUser.Name)
}

func TestCreateValidation(t *testing.T) {
	s := newTestStore(t)

	var validationErr *store.ValidationError

	_, err := s.CreateUser("")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)

	_, err = s.CreateCourse("", "Intro")
	require.ErrorAs(t, err, &validationErr)

	_, err = s.CreateLobby("", "Olin 155", 5, 1)
	require.ErrorAs(t, err, &validationErr)

	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGetMissingIsNotFound(t *testing.T) {
	s := newTestStore(t)

	var notFoundErr *store.NotFoundError
	_, err := s.GetLobby(42)
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Lobby", notFoundErr.Resource)
	assert.EqualError(t, err, "Lobby not found")
}

func TestCreateLobbyMissingCourseWritesNothing(t *testing.T) {
	s := newTestStore(t)

	var notFoundErr *store.NotFoundError
	_, err := s.CreateLobby("study session", "Olin 155", 5, 999)
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Course", notFoundErr.Resource)

	lobbies, err := s.ListLobbies()
	require.NoError(t, err)
	assert.Empty(t, lobbies)
}

func TestListOrderIsInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	first, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)
	second, err := s.CreateCourse("CS2", "Data Structures")
	require.NoError(t, err)

	courses, err := s.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, first.ID, courses[0].ID)
	assert.Equal(t, second.ID, courses[1].ID)
}

func TestAddUserToCourseIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	course, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)
	user, err := s.CreateUser("Ada")
	require.NoError(t, err)

	require.NoError(t, s.AddUserToCourse(course.ID, user.ID))
	require.NoError(t, s.AddUserToCourse(course.ID, user.ID))

	users, err := s.UsersInCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, user.ID, users[0].ID)

	courses, err := s.CoursesForUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestAddUserToCourseChecksBothIDs(t *testing.T) {
	s := newTestStore(t)

	course, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)

	var notFoundErr *store.NotFoundError
	err = s.AddUserToCourse(999, 1)
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Course", notFoundErr.Resource)

	err = s.AddUserToCourse(course.ID, 999)
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "User", notFoundErr.Resource)
}

func TestAddUserToLobbyChecksBothIDs(t *testing.T) {
	s := newTestStore(t)

	course, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)
	lobby, err := s.CreateLobby("study session", "Olin 155", 5, course.ID)
	require.NoError(t, err)

	var notFoundErr *store.NotFoundError
	_, err = s.AddUserToLobby(999, 1, models.MembershipTypeOwner)
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Lobby", notFoundErr.Resource)

	_, err = s.AddUserToLobby(lobby.ID, 999, models.MembershipTypeOwner)
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "User", notFoundErr.Resource)
}

func TestDeleteLobbyRemovesMemberships(t *testing.T) {
	s := newTestStore(t)

	course, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)
	lobby, err := s.CreateLobby("study session", "Olin 155", 5, course.ID)
	require.NoError(t, err)
	user, err := s.CreateUser("Ada")
	require.NoError(t, err)
	_, err = s.AddUserToLobby(lobby.ID, user.ID, models.MembershipTypeOwner)
	require.NoError(t, err)

	require.NoError(t, s.DeleteLobby(lobby.ID))

	var notFoundErr *store.NotFoundError
	_, err = s.GetLobby(lobby.ID)
	require.ErrorAs(t, err, &notFoundErr)

	lobbies, err := s.LobbiesForUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lobbies)

	// The member is not touched by the lobby cascade.
	_, err = s.GetUser(user.ID)
	require.NoError(t, err)
}

func TestDeleteCourseCascadesThroughLobbies(t *testing.T) {
	s := newTestStore(t)

	course, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)
	lobbyA, err := s.CreateLobby("morning session", "Olin 155", 5, course.ID)
	require.NoError(t, err)
	lobbyB, err := s.CreateLobby("evening session", "Duffield", 8, course.ID)
	require.NoError(t, err)

	user, err := s.CreateUser("Ada")
	require.NoError(t, err)
	require.NoError(t, s.AddUserToCourse(course.ID, user.ID))
	_, err = s.AddUserToLobby(lobbyA.ID, user.ID, models.MembershipTypeOwner)
	require.NoError(t, err)
	_, err = s.AddUserToLobby(lobbyB.ID, user.ID, models.MembershipTypeUser)
	require.NoError(t, err)

	require.NoError(t, s.DeleteCourse(course.ID))

	var notFoundErr *store.NotFoundError
	_, err = s.GetCourse(course.ID)
	require.ErrorAs(t, err, &notFoundErr)
	_, err = s.GetLobby(lobbyA.ID)
	require.ErrorAs(t, err, &notFoundErr)
	_, err = s.GetLobby(lobbyB.ID)
	require.ErrorAs(t, err, &notFoundErr)

	lobbies, err := s.LobbiesForUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lobbies)

	// Enrollment rows are gone; the enrolled user is not.
	courses, err := s.CoursesForUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, courses)
	_, err = s.GetUser(user.ID)
	require.NoError(t, err)
}

func TestDeletePostCascadesComments(t *testing.T) {
	s := newTestStore(t)

	author, err := s.CreateUser("Ada")
	require.NoError(t, err)
	post, err := s.CreatePost("office hours", "anyone going?", author.ID)
	require.NoError(t, err)
	comment, err := s.CreateComment("I am", author.ID, post.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(post.ID))

	var notFoundErr *store.NotFoundError
	_, err = s.GetPost(post.ID)
	require.ErrorAs(t, err, &notFoundErr)
	_, err = s.GetComment(comment.ID)
	require.ErrorAs(t, err, &notFoundErr)
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestStore(t)

	course, err := s.CreateCourse("CS1", "Intro")
	require.NoError(t, err)
	lobby, err := s.CreateLobby("study session", "Olin 155", 5, course.ID)
	require.NoError(t, err)

	ada, err := s.CreateUser("Ada")
	require.NoError(t, err)
	grace, err := s.CreateUser("Grace")
	require.NoError(t, err)

	require.NoError(t, s.AddUserToCourse(course.ID, ada.ID))
	_, err = s.AddUserToLobby(lobby.ID, ada.ID, models.MembershipTypeOwner)
	require.NoError(t, err)

	adaPost, err := s.CreatePost("notes", "week 3 notes attached", ada.ID)
	require.NoError(t, err)
	gracePost, err := s.CreatePost("question", "problem set 2?", grace.ID)
	require.NoError(t, err)

	// Ada comments on Grace's post; Grace comments on Ada's.
	_, err = s.CreateComment("see my notes", ada.ID, gracePost.ID)
	require.NoError(t, err)
	graceComment, err := s.CreateComment("thanks!", grace.ID, adaPost.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(ada.ID))

	var notFoundErr *store.NotFoundError
	_, err = s.GetUser(ada.ID)
	require.ErrorAs(t, err, &notFoundErr)

	// Ada's post went, taking Grace's comment on it with it.
	_, err = s.GetPost(adaPost.ID)
	require.ErrorAs(t, err, &notFoundErr)
	_, err = s.GetComment(graceComment.ID)
	require.ErrorAs(t, err, &notFoundErr)

	// Grace's post survives, minus Ada's comment.
	_, err = s.GetPost(gracePost.ID)
	require.NoError(t, err)
	comments, err := s.CommentsForPost(gracePost.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	// Membership and enrollment rows are gone; the lobby and course remain.
	owners, err := s.UsersInLobbyByType(lobby.ID, models.MembershipTypeOwner)
	require.NoError(t, err)
	assert.Empty(t, owners)
	users, err := s.UsersInCourse(course.ID)
	require.NoError(t, err)
	assert.Empty(t, users)
	_, err = s.GetLobby(lobby.ID)
	require.NoError(t, err)
}

func TestDeleteMissingEntityIsNotFound(t *testing.T) {
	s := newTestStore(t)

	var notFoundErr *store.NotFoundError
	require.ErrorAs(t, s.DeleteLobby(7), &notFoundErr)
	require.ErrorAs(t, s.DeleteCourse(7), &notFoundErr)
	require.ErrorAs(t, s.DeleteUser(7), &notFoundErr)
	require.ErrorAs(t, s.DeletePost(7), &notFoundErr)
}
