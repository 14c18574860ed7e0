package application

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func mockAnyContext() interface{} {
	return mock.Anything
}
