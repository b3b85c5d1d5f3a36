package roster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secretsanta/matching"
	"github.com/katalvlaran/secretsanta/roster"
)

func TestSnapshotRoundTrip(t *testing.T) {
	r := roster.New()
	for _, n := range []string{"Ann", "Ben", "Cat"} {
		require.NoError(t, r.Add(n))
	}
	require.NoError(t, r.AddExclusion("Ann", "Ben"))

	data, err := r.Snapshot().Encode()
	require.NoError(t, err)
	require.JSONEq(t, `{"participants":["Ann","Ben","Cat"],"exclusions":[{"giver":"Ann","receiver":"Ben"}]}`, string(data))

	s, err := roster.Decode(data)
	require.NoError(t, err)
	restored := roster.New()
	require.NoError(t, restored.Restore(s))
	require.Equal(t, r.Participants(), restored.Participants())
	require.Equal(t, r.Exclusions(), restored.Exclusions())
}

func TestEmptySnapshotEncodesEmptyLists(t *testing.T) {
	data, err := roster.New().Snapshot().Encode()
	require.NoError(t, err)
	require.JSONEq(t, `{"participants":[],"exclusions":[]}`, string(data))
}

func TestRestoreCleansExclusions(t *testing.T) {
	r := roster.New()
	err := r.Restore(roster.Snapshot{
		Participants: []string{"A", "B", "C"},
		Exclusions: []matching.Exclusion{
			{Giver: "A", Receiver: "B"},
			{Giver: "A", Receiver: "B"},
			{Giver: "A", Receiver: "A"},
			{Giver: "A", Receiver: "Ghost"},
			{Giver: "", Receiver: "C"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []matching.Exclusion{{Giver: "A", Receiver: "B"}}, r.Exclusions())
}

func TestRestoreRejectsBadParticipants(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.Add("Keep"))

	err := r.Restore(roster.Snapshot{Participants: []string{"A", "A"}})
	require.ErrorIs(t, err, roster.ErrInvalidSnapshot)
	require.ErrorIs(t, err, roster.ErrDuplicateName)

	err = r.Restore(roster.Snapshot{Participants: []string{"A", ""}})
	require.ErrorIs(t, err, roster.ErrInvalidSnapshot)

	require.Equal(t, []string{"Keep"}, r.Participants(), "failed restore leaves state untouched")

	_, err = roster.Decode([]byte("{not json"))
	require.ErrorIs(t, err, roster.ErrInvalidSnapshot)
}

func TestRestoreHonoursCasePolicy(t *testing.T) {
	r := roster.New(roster.WithCaseInsensitive())
	err := r.Restore(roster.Snapshot{Participants: []string{"Sam", "SAM"}})
	require.ErrorIs(t, err, roster.ErrDuplicateName)
}
