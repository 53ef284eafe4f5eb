// Package docs DMV Records API.
//
// Documentation of the DMV Records API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/dmv-records-api/models"
	"github.com/linesmerrill/dmv-records-api/records"
)

// swagger:route GET /health health healthEndpointID
// Lists the health of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api and whether its database answers.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/me user meID
// Gets the authenticated user and their access flags.
// responses:
//   200: profileResponse
//   401: errorResponse

// swagger:response profileResponse
type profileResponseWrapper struct {
	// in:body
	Body models.Profile
}

// swagger:route GET /api/dmv/characters character listCharacters
// Lists the characters owned by the caller, newest first.
// responses:
//   200: characterListResponse
//   401: errorResponse

// swagger:response characterListResponse
type characterListResponseWrapper struct {
	// in:body
	Body []models.Character
}

// swagger:route POST /api/dmv/characters character createCharacter
// Creates a character owned by the caller.
// responses:
//   200: successResponse
//   400: errorResponse
//   401: errorResponse

// swagger:parameters createCharacter updateCharacter
type characterParamsWrapper struct {
	// in:body
	Body records.CharacterInput
}

// swagger:route GET /api/dmv/characters/{character_id} character characterByID
// Gets a character with its vehicles, citations, arrests and warrants.
// Warrants that are still active are only listed for LEO and judge callers.
// responses:
//   200: characterDetailResponse
//   401: errorResponse
//   404: errorResponse

// swagger:response characterDetailResponse
type characterDetailResponseWrapper struct {
	// in:body
	Body models.CharacterDetail
}

// swagger:route PUT /api/dmv/characters/{character_id} character updateCharacter
// Updates a character. Only the owner or a judge may edit.
// responses:
//   200: successResponse
//   400: errorResponse
//   403: errorResponse
//   404: errorResponse

// swagger:route POST /api/dmv/characters/{character_id}/vehicles vehicle addVehicle
// Registers a vehicle to a character. Plates are unique.
// responses:
//   200: successResponse
//   400: errorResponse
//   403: errorResponse
//   404: errorResponse
//   409: errorResponse

// swagger:route PUT /api/dmv/vehicles/{vehicle_id} vehicle updateVehicle
// Updates a vehicle registration.
// responses:
//   200: successResponse
//   403: errorResponse
//   404: errorResponse
//   409: errorResponse

// swagger:parameters addVehicle updateVehicle
type vehicleParamsWrapper struct {
	// in:body
	Body records.VehicleInput
}

// swagger:route DELETE /api/dmv/vehicles/{vehicle_id} vehicle deleteVehicle
// Removes a vehicle registration.
// responses:
//   200: successResponse
//   403: errorResponse
//   404: errorResponse

// swagger:route POST /api/dmv/characters/{character_id}/citations report createCitation
// Issues a citation. Requires LEO access.
// responses:
//   200: successResponse
//   400: errorResponse
//   403: errorResponse
//   404: errorResponse

// swagger:parameters createCitation
type citationParamsWrapper struct {
	// in:body
	Body records.CitationInput
}

// swagger:route POST /api/dmv/characters/{character_id}/arrests report createArrest
// Files an arrest report. Requires LEO access.
// responses:
//   200: successResponse
//   400: errorResponse
//   403: errorResponse
//   404: errorResponse

// swagger:parameters createArrest
type arrestParamsWrapper struct {
	// in:body
	Body records.ArrestInput
}

// swagger:route POST /api/dmv/characters/{character_id}/warrants warrant createWarrant
// Issues a warrant. Requires judge access.
// responses:
//   200: successResponse
//   400: errorResponse
//   403: errorResponse
//   404: errorResponse

// swagger:parameters createWarrant
type warrantParamsWrapper struct {
	// in:body
	Body records.WarrantInput
}

// swagger:route PUT /api/dmv/warrants/{warrant_id}/complete warrant completeWarrant
// Marks a warrant as served. Requires LEO or judge access.
// responses:
//   200: successResponse
//   403: errorResponse
//   404: errorResponse

// swagger:route GET /api/dmv/search character searchCharacters
// Searches characters by name. Requires LEO or judge access.
// responses:
//   200: searchResponse
//   403: errorResponse

// swagger:response searchResponse
type searchResponseWrapper struct {
	// in:body
	Body []models.CharacterSummary
}

// swagger:response successResponse
type successResponseWrapper struct {
	// in:body
	Body models.SuccessResponse
}

// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorResponse
}
