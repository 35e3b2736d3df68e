// Package serializer assembles the two response shapes every entity has: a
// simple form carrying identity and scalar fields only, and a full form
// adding one level of related entities. Related entities are always nested
// in simple form, so serialization terminates without cycle tracking.
package serializer

import (
	"errors"
	"fmt"

	"studyhub/backend/internal/models"
	"studyhub/backend/internal/store"
)

type UserSimple struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type UserFull struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Courses  []CourseSimple  `json:"courses"`
	Lobbies  []LobbySimple   `json:"lobbies"`
	Posts    []PostSimple    `json:"posts"`
	Comments []CommentSimple `json:"comments"`
}

type CourseSimple struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type CourseFull struct {
	ID      uint          `json:"id"`
	Code    string        `json:"code"`
	Name    string        `json:"name"`
	Users   []UserSimple  `json:"users"`
	Lobbies []LobbySimple `json:"lobbies"`
}

// LobbySimple is the one asymmetric simple form: it nests the owning
// course, itself in simple form.
type LobbySimple struct {
	ID          uint         `json:"id"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	MaxPeople   int          `json:"max_people"`
	Course      CourseSimple `json:"course"`
}

type LobbyFull struct {
	ID          uint         `json:"id"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	MaxPeople   int          `json:"max_people"`
	Course      CourseSimple `json:"course"`
	Owner       []UserSimple `json:"owner"`
	Users       []UserSimple `json:"users"`
}

type PostSimple struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostFull struct {
	ID       uint            `json:"id"`
	User     UserSimple      `json:"user"`
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Comments []CommentSimple `json:"comments"`
}

type CommentSimple struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

type CommentFull struct {
	ID      uint       `json:"id"`
	User    UserSimple `json:"user"`
	Post    PostSimple `json:"post"`
	Content string     `json:"content"`
}

// Serializer builds response shapes by re-querying the store for related
// rows on every call; nothing is cached between serializations.
type Serializer struct {
	store *store.Store
}

func New(s *store.Store) *Serializer {
	return &Serializer{store: s}
}

func SimpleUser(u models.User) UserSimple {
	return UserSimple{ID: u.ID, Name: u.Name}
}

func SimpleCourse(c models.Course) CourseSimple {
	return CourseSimple{ID: c.ID, Code: c.Code, Name: c.Name}
}

func SimplePost(p models.Post) PostSimple {
	return PostSimple{ID: p.ID, Title: p.Title, Content: p.Content}
}

func SimpleComment(c models.Comment) CommentSimple {
	return CommentSimple{ID: c.ID, Content: c.Content}
}

// SimpleLobby resolves the owning course. A lobby whose course is gone is a
// broken invariant, so the miss surfaces as a ConsistencyError rather than
// a NotFoundError.
func (s *Serializer) SimpleLobby(l models.Lobby) (LobbySimple, error) {
	course, err := s.store.GetCourse(l.CourseID)
	if err != nil {
		return LobbySimple{}, asConsistency(err, "lobby %d references missing course %d", l.ID, l.CourseID)
	}
	return LobbySimple{
		ID:          l.ID,
		Description: l.Description,
		Location:    l.Location,
		MaxPeople:   l.MaxPeople,
		Course:      SimpleCourse(course),
	}, nil
}

func (s *Serializer) FullUser(u models.User) (UserFull, error) {
	courses, err := s.store.CoursesForUser(u.ID)
	if err != nil {
		return UserFull{}, err
	}
	lobbies, err := s.store.LobbiesForUser(u.ID)
	if err != nil {
		return UserFull{}, err
	}
	lobbySimples, err := s.simpleLobbies(lobbies)
	if err != nil {
		return UserFull{}, err
	}
	posts, err := s.store.PostsForUser(u.ID)
	if err != nil {
		return UserFull{}, err
	}
	comments, err := s.store.CommentsForUser(u.ID)
	if err != nil {
		return UserFull{}, err
	}
	return UserFull{
		ID:       u.ID,
		Name:     u.Name,
		Courses:  simpleCourses(courses),
		Lobbies:  lobbySimples,
		Posts:    simplePosts(posts),
		Comments: simpleComments(comments),
	}, nil
}

func (s *Serializer) FullCourse(c models.Course) (CourseFull, error) {
	users, err := s.store.UsersInCourse(c.ID)
	if err != nil {
		return CourseFull{}, err
	}
	lobbies, err := s.store.LobbiesForCourse(c.ID)
	if err != nil {
		return CourseFull{}, err
	}
	lobbySimples, err := s.simpleLobbies(lobbies)
	if err != nil {
		return CourseFull{}, err
	}
	return CourseFull{
		ID:      c.ID,
		Code:    c.Code,
		Name:    c.Name,
		Users:   simpleUsers(users),
		Lobbies: lobbySimples,
	}, nil
}

func (s *Serializer) FullLobby(l models.Lobby) (LobbyFull, error) {
	simple, err := s.SimpleLobby(l)
	if err != nil {
		return LobbyFull{}, err
	}
	owners, err := s.store.UsersInLobbyByType(l.ID, models.MembershipTypeOwner)
	if err != nil {
		return LobbyFull{}, err
	}
	members, err := s.store.UsersInLobbyByType(l.ID, models.MembershipTypeUser)
	if err != nil {
		return LobbyFull{}, err
	}
	return LobbyFull{
		ID:          simple.ID,
		Description: simple.Description,
		Location:    simple.Location,
		MaxPeople:   simple.MaxPeople,
		Course:      simple.Course,
		Owner:       simpleUsers(owners),
		Users:       simpleUsers(members),
	}, nil
}

func (s *Serializer) FullPost(p models.Post) (PostFull, error) {
	author, err := s.store.GetUser(p.UserID)
	if err != nil {
		return PostFull{}, asConsistency(err, "post %d references missing user %d", p.ID, p.UserID)
	}
	comments, err := s.store.CommentsForPost(p.ID)
	if err != nil {
		return PostFull{}, err
	}
	return PostFull{
		ID:       p.ID,
		User:     SimpleUser(author),
		Title:    p.Title,
		Content:  p.Content,
		Comments: simpleComments(comments),
	}, nil
}

func (s *Serializer) FullComment(c models.Comment) (CommentFull, error) {
	author, err := s.store.GetUser(c.UserID)
	if err != nil {
		return CommentFull{}, asConsistency(err, "comment %d references missing user %d", c.ID, c.UserID)
	}
	post, err := s.store.GetPost(c.PostID)
	if err != nil {
		return CommentFull{}, asConsistency(err, "comment %d references missing post %d", c.ID, c.PostID)
	}
	return CommentFull{
		ID:      c.ID,
		User:    SimpleUser(author),
		Post:    SimplePost(post),
		Content: c.Content,
	}, nil
}

// SimpleComments maps a comment slice into simple form; exposed for the
// comments listing endpoint, which returns a bare array.
func SimpleComments(comments []models.Comment) []CommentSimple {
	return simpleComments(comments)
}

// Association lists always serialize as [] rather than null, so the slice
// helpers allocate even for empty inputs.

func simpleUsers(users []models.User) []UserSimple {
	out := make([]UserSimple, 0, len(users))
	for _, u := range users {
		out = append(out, SimpleUser(u))
	}
	return out
}

func simpleCourses(courses []models.Course) []CourseSimple {
	out := make([]CourseSimple, 0, len(courses))
	for _, c := range courses {
		out = append(out, SimpleCourse(c))
	}
	return out
}

func simplePosts(posts []models.Post) []PostSimple {
	out := make([]PostSimple, 0, len(posts))
	for _, p := range posts {
		out = append(out, SimplePost(p))
	}
	return out
}

func simpleComments(comments []models.Comment) []CommentSimple {
	out := make([]CommentSimple, 0, len(comments))
	for _, c := range comments {
		out = append(out, SimpleComment(c))
	}
	return out
}

func (s *Serializer) simpleLobbies(lobbies []models.Lobby) ([]LobbySimple, error) {
	out := make([]LobbySimple, 0, len(lobbies))
	for _, l := range lobbies {
		simple, err := s.SimpleLobby(l)
		if err != nil {
			return nil, err
		}
		out = append(out, simple)
	}
	return out, nil
}

// asConsistency rewrites a NotFoundError from a foreign-key dereference
// into a ConsistencyError; any other error passes through.
func asConsistency(err error, format string, args ...any) error {
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		return &store.ConsistencyError{Detail: fmt.Sprintf(format, args...)}
	}
	return err
}
