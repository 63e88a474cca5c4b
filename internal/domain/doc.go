// Package domain contains the entities shared by the trivia, coffee and
// casting services: questions and categories, drinks and their recipes,
// movies and actors. Entities validate themselves and know nothing about
// storage or HTTP.
package domain
