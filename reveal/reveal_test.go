package reveal_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/secretsanta/matching"
	"github.com/katalvlaran/secretsanta/reveal"
)

type SessionSuite struct {
	suite.Suite
	pairs matching.Assignment
	s     *reveal.Session
}

func (s *SessionSuite) SetupTest() {
	s.pairs = matching.Assignment{
		{Giver: "Ann", Receiver: "Ben"},
		{Giver: "Ben", Receiver: "Cat"},
		{Giver: "Cat", Receiver: "Ann"},
	}
	s.s = reveal.NewSession(s.pairs)
}

func (s *SessionSuite) TestWalkThrough() {
	for i, want := range s.pairs {
		p, step := s.s.Current()
		require.Equal(s.T(), reveal.Handoff, step)
		require.Equal(s.T(), want, p)
		require.Equal(s.T(), len(s.pairs)-i, s.s.Remaining())

		require.NoError(s.T(), s.s.Reveal())
		p, step = s.s.Current()
		require.Equal(s.T(), reveal.Revealed, step)
		require.Equal(s.T(), want.Receiver, p.Receiver)
		require.Equal(s.T(), len(s.pairs)-i-1, s.s.Remaining())

		require.NoError(s.T(), s.s.Next())
	}

	p, step := s.s.Current()
	require.Equal(s.T(), reveal.Finished, step)
	require.Zero(s.T(), p)
	require.Zero(s.T(), s.s.Remaining())
}

func (s *SessionSuite) TestIllegalTransitions() {
	require.ErrorIs(s.T(), s.s.Next(), reveal.ErrIllegalTransition)
	require.Equal(s.T(), reveal.Handoff, s.s.Step(), "failed action leaves state alone")

	require.NoError(s.T(), s.s.Reveal())
	require.ErrorIs(s.T(), s.s.Reveal(), reveal.ErrIllegalTransition)
	require.Equal(s.T(), reveal.Revealed, s.s.Step())
}

func (s *SessionSuite) TestFinishedRejectsEverything() {
	for range s.pairs {
		require.NoError(s.T(), s.s.Reveal())
		require.NoError(s.T(), s.s.Next())
	}
	require.ErrorIs(s.T(), s.s.Reveal(), reveal.ErrIllegalTransition)
	require.ErrorIs(s.T(), s.s.Next(), reveal.ErrIllegalTransition)
}

func (s *SessionSuite) TestReset() {
	require.NoError(s.T(), s.s.Reveal())
	require.NoError(s.T(), s.s.Next())
	s.s.Reset()

	p, step := s.s.Current()
	require.Equal(s.T(), reveal.Handoff, step)
	require.Equal(s.T(), s.pairs[0], p)
}

func (s *SessionSuite) TestSessionOwnsItsCopy() {
	s.pairs[0].Receiver = "Mallory"
	p, _ := s.s.Current()
	require.Equal(s.T(), "Ben", p.Receiver)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestEmptySessionStartsFinished(t *testing.T) {
	s := reveal.NewSession(nil)
	require.Equal(t, reveal.Finished, s.Step())
	require.Zero(t, s.Remaining())
	require.ErrorIs(t, s.Reveal(), reveal.ErrIllegalTransition)

	s.Reset()
	require.Equal(t, reveal.Finished, s.Step())
}

func TestStepString(t *testing.T) {
	require.Equal(t, "handoff", reveal.Handoff.String())
	require.Equal(t, "revealed", reveal.Revealed.String())
	require.Equal(t, "finished", reveal.Finished.String())
	require.Equal(t, "Step(9)", reveal.Step(9).String())
}
