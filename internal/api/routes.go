package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Users      *UserHandler
	Auth       *AuthHandler
	Posts      *PostHandler
	Comments   *CommentHandler
	Categories *CategoryHandler
}

// RegisterRoutes mounts every API route on r. Routes that change state or
// list users run behind authenticate.
func RegisterRoutes(r chi.Router, h Handlers, authenticate func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/createUser", h.Users.CreateUser)
		r.Get("/login", h.Auth.Login)
		r.Post("/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/getAllUsers", h.Users.GetAllUsers)
			r.Get("/getUserById/{id}", h.Users.GetUserByID)
			r.Put("/updateUser/{id}", h.Users.UpdateUser)
			r.Delete("/deleteUser/{id}", h.Users.DeleteUser)
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/getAllPosts", h.Posts.GetAllPosts)
		r.Get("/getPostById/{id}", h.Posts.GetPostByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/createPost", h.Posts.CreatePost)
			r.Put("/updatePost/{id}", h.Posts.UpdatePost)
			r.Delete("/deletePost/{id}", h.Posts.DeletePost)
		})
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/getAllComments/{postId}", h.Comments.GetAllComments)
		r.With(authenticate).Post("/createComment", h.Comments.CreateComment)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/getCategoriesByPostId/{postId}", h.Categories.GetCategoriesByPostID)
		r.With(authenticate).Post("/createCategory", h.Categories.CreateCategory)
	})
}
