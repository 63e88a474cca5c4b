// Package service implements the business operations of the trivia, coffee
// and casting APIs on top of the store interfaces.
//
// Services own the rules that span single store calls: pagination
// failures, quiz selection, partial updates and relationship id
// de-duplication. Expected conditions are reported with sentinel errors
// (ErrNoResults) or passed through from the domain and store packages;
// persistence failures that fit no other class are wrapped in ServiceError,
// which matches ErrUnprocessable.
package service
