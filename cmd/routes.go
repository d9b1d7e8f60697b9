package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Users
	mux.Post("/users/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/users/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/users/user_info/:user_id", authMiddleware.ThenFunc(app.userHandler.GetUserInfo))
	mux.Post("/users/avatar/:user_id", authMiddleware.ThenFunc(app.userHandler.UploadAvatar))
	mux.Post("/users/fcm_token", authMiddleware.ThenFunc(app.userHandler.RegisterFCMToken))

	// Providers
	mux.Post("/providers", authMiddleware.ThenFunc(app.providerHandler.CreateProvider))
	mux.Get("/providers/:provider_id", authMiddleware.ThenFunc(app.providerHandler.GetProvider))
	mux.Post("/providers/subscribe", authMiddleware.ThenFunc(app.providerHandler.SubscribeServices))
	mux.Del("/providers/:provider_id/services/:service_id", authMiddleware.ThenFunc(app.providerHandler.UnsubscribeService))
	mux.Post("/providers/rate", authMiddleware.ThenFunc(app.providerHandler.RateProvider))
	mux.Put("/providers/:provider_id/availability", authMiddleware.ThenFunc(app.providerHandler.SetAvailability))
	mux.Del("/providers/:provider_id", authMiddleware.ThenFunc(app.providerHandler.DeleteProvider))

	// Services
	mux.Post("/services", adminAuthMiddleware.ThenFunc(app.serviceHandler.CreateService))
	mux.Get("/services", authMiddleware.ThenFunc(app.serviceHandler.GetAllServices))
	mux.Get("/services/:service_id", authMiddleware.ThenFunc(app.serviceHandler.GetServiceByID))
	mux.Put("/services/:service_id", adminAuthMiddleware.ThenFunc(app.serviceHandler.UpdateService))
	mux.Del("/services/:service_id", adminAuthMiddleware.ThenFunc(app.serviceHandler.DeleteService))

	// Requests
	mux.Post("/requests/createRequest", authMiddleware.ThenFunc(app.requestHandler.CreateRequest))
	mux.Put("/requests/updateStatus/:request_id", authMiddleware.ThenFunc(app.requestHandler.UpdateStatus))
	mux.Get("/requests/getActiveRequestsForProvider/:provider_id", authMiddleware.ThenFunc(app.requestHandler.GetActiveRequestsForProvider))
	mux.Get("/requests/getActiveRequestsForConsumer/:consumer_id", authMiddleware.ThenFunc(app.requestHandler.GetActiveRequestsForConsumer))
	mux.Del("/requests/deleteRequest/:request_id", authMiddleware.ThenFunc(app.requestHandler.DeleteRequest))
	mux.Get("/requests/:request_id", authMiddleware.ThenFunc(app.requestHandler.GetRequestByID))

	// Offers
	mux.Post("/offers/createOffers", authMiddleware.ThenFunc(app.offerHandler.CreateOffer))
	mux.Get("/offers", authMiddleware.ThenFunc(app.offerHandler.GetOffers))
	mux.Put("/offers/updateStatus/:offer_id", authMiddleware.ThenFunc(app.offerHandler.UpdateStatus))
	mux.Del("/offers/deleteOffer/:offer_id", authMiddleware.ThenFunc(app.offerHandler.DeleteOffer))
	mux.Get("/offers/:offer_id", authMiddleware.ThenFunc(app.offerHandler.GetOfferByID))

	// Paired jobs
	mux.Post("/pairedJobs/createPairedJob", authMiddleware.ThenFunc(app.pairedJobHandler.CreatePairedJob))
	mux.Get("/pairedJobs/:job_id", authMiddleware.ThenFunc(app.pairedJobHandler.GetJobByID))
	mux.Get("/pairedJobs", authMiddleware.ThenFunc(app.pairedJobHandler.GetJobs))

	// Payments
	mux.Post("/payment/createPaymentIntent", authMiddleware.ThenFunc(app.paymentHandler.CreatePaymentIntent))
	mux.Post("/payment/confirmPayment/:payment_intent_id", authMiddleware.ThenFunc(app.paymentHandler.ConfirmPayment))

	// Realtime channel for providers
	mux.Get("/ws/provider/:provider_id", standardMiddleware.ThenFunc(app.providerHub.ServeWS))

	return standardMiddleware.Then(mux)
}
