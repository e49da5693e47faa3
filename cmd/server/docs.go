package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           TradingNoteX Risk API
// @version         0.1.0
// @description     Risk discipline replay, partial exit planning, and journal KPIs.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
