package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"github.com/dugiahuy/session-billing/billing/model"
)

const HeaderName = "X-Idempotency-Key"

// IdempotencyMiddleware replays the first successful response for a repeated
// X-Idempotency-Key on the same path. Failed requests are forgotten so the
// caller can retry with the same key.
//
//encore:middleware global target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := generateBodyHash(req)

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	claimErr := store.SetIfNotExists(req.Context(), cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	})
	switch {
	case claimErr == nil:
		return process(req, next, cacheKey, bodyHash, idempotencyKey)
	case errors.Is(claimErr, cache.KeyExists):
	default:
		rlog.Error("Failed to claim idempotency key", "key", idempotencyKey, "error", claimErr)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Unavailable, Message: "failed to check idempotency"},
		}
	}

	entry, getErr := store.Get(req.Context(), cacheKey)
	if getErr != nil {
		if errors.Is(getErr, cache.Miss) {
			// expired or cleared between the claim and the read
			return middleware.Response{
				Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
			}
		}
		rlog.Error("Failed to read idempotency entry", "key", idempotencyKey, "error", getErr)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Unavailable, Message: "failed to check idempotency"},
		}
	}

	return handleExistingEntry(req, next, entry, bodyHash, idempotencyKey)
}

func process(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash, idempotencyKey string) middleware.Response {
	response := next(req)
	if response.Err != nil {
		deleteCacheEntry(req.Context(), cacheKey)
	} else {
		markAsCompleted(req.Context(), cacheKey, bodyHash, idempotencyKey, response)
	}
	return response
}

// extractIdempotencyKey extracts and validates the idempotency key from headers
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = strings.TrimSpace(headers.Get(HeaderName))
	}

	if idempotencyKey == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	if len(idempotencyKey) > 255 {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is too long"}
	}

	return idempotencyKey, nil
}

// generateBodyHash creates a hash of the request body for conflict detection
func generateBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("Failed to marshal request body", "error", err)
		return ""
	}
	return hashing(bodyBytes)
}

func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, idempotencyKey string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyStatusProcessing:
		rlog.Info("Concurrent request detected", "key", idempotencyKey)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case model.IdempotencyStatusCompleted:
		if resp, ok := cachedResponse(req, entry, idempotencyKey); ok {
			return resp
		}
	default:
		rlog.Warn("Unknown cache entry status, processing as new request", "key", idempotencyKey, "status", entry.Status)
	}

	return process(req, next, model.IdempotencyKey{Resource: req.Data().Path, Key: idempotencyKey}, bodyHash, idempotencyKey)
}

// validateBodyHash checks for conflicts in request body hash
func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

// cachedResponse decodes a stored payload into the endpoint's response type.
func cachedResponse(req middleware.Request, entry model.IdempotencyCacheEntry, idempotencyKey string) (middleware.Response, bool) {
	if len(entry.Response) == 0 {
		return middleware.Response{}, false
	}
	api := req.Data().API
	if api == nil || api.ResponseType == nil {
		return middleware.Response{}, false
	}

	responseValue := reflect.New(api.ResponseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, responseValue); err != nil {
		rlog.Error("Failed to unmarshal cached response into correct type", "error", err, "key", idempotencyKey)
		return middleware.Response{}, false
	}

	rlog.Info("Returning cached response", "key", idempotencyKey)
	return middleware.Response{Payload: responseValue}, true
}

// deleteCacheEntry removes processing entry to allow retry
func deleteCacheEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := store.Delete(ctx, cacheKey); err != nil {
		rlog.Error("Failed to clear failed request from cache", "error", err)
	}
}

// markAsCompleted caches the successful response
func markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash, idempotencyKey string, response middleware.Response) {
	completedEntry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("Failed to marshal response payload for caching", "error", err)
			deleteCacheEntry(ctx, cacheKey)
			return
		}
		completedEntry.Response = payloadBytes
	}

	if err := store.Set(ctx, cacheKey, completedEntry); err != nil {
		rlog.Error("Failed to cache successful response", "error", err)
		return
	}

	rlog.Debug("Request completed and response cached", "key", idempotencyKey)
}

// hashing creates a stable hash of the JSON request body
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
