package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewHandler wires all routes. Read endpoints (poll detail, options,
// results) are public; every mutation goes through the auth middleware
// and reaches services with an explicit requester id.
func NewHandler(
	jwtSecret []byte,
	pollHandler *PollHandler,
	optionHandler *OptionHandler,
	voteHandler *VoteHandler,
	resultHandler *ResultHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	auth := AuthMiddleware(jwtSecret)

	r.Route("/api", func(r chi.Router) {
		r.Route("/polls", func(r chi.Router) {
			r.Get("/", pollHandler.ListPolls)
			r.With(auth).Post("/", pollHandler.CreatePoll)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", pollHandler.GetPoll)
				r.With(auth).Post("/close", pollHandler.ClosePoll)

				r.Get("/options", optionHandler.ListOptions)
				r.With(auth).Post("/options", optionHandler.AddOption)

				r.With(auth).Post("/votes", voteHandler.CastVote)
				r.With(auth).Get("/my-vote", voteHandler.GetMyVote)

				r.Get("/results", resultHandler.GetResults)
			})
		})

		r.Route("/options", func(r chi.Router) {
			r.With(auth).Delete("/{optionID}", optionHandler.RemoveOption)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/{id}/polls", pollHandler.ListPollsByOwner)
		})
	})

	return r
}
