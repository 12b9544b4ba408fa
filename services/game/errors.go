package game

import (
	"errors"
	"fmt"
)

// Room lookup / join errors, reported distinctly to the caller.
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
)

// ErrInvalidMove is the base for every play-card rejection. The gateway
// collapses all of these to one generic message towards the client, but the
// wrapped variants keep "not my turn" distinguishable from "bad card id" in
// logs and tests.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrNoActiveGame = fmt.Errorf("%w: game has not started", ErrInvalidMove)
	ErrCardNotOwned = fmt.Errorf("%w: card not in personal stack", ErrInvalidMove)
	ErrNotYourTurn  = fmt.Errorf("%w: not your turn", ErrInvalidMove)
	ErrNoSuchArea   = fmt.Errorf("%w: no such play area", ErrInvalidMove)
)
