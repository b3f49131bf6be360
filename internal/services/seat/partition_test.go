package seat

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatMembers(n int) []models.Member {
	members := make([]models.Member, 0, n)
	for i := 1; i <= n; i++ {
		members = append(members, models.Member{ID: fmt.Sprintf("m%d", i), Name: fmt.Sprintf("Member %d", i)})
	}
	return members
}

func TestAssignColumnsByParity(t *testing.T) {
	members := seatMembers(5)

	columns := AssignColumns(members, 2)

	require.Len(t, columns, 2)
	assert.Equal(t, []models.Desk{
		{Number: 1, Member: members[0]},
		{Number: 3, Member: members[2]},
		{Number: 5, Member: members[4]},
	}, columns[0])
	assert.Equal(t, []models.Desk{
		{Number: 2, Member: members[1]},
		{Number: 4, Member: members[3]},
	}, columns[1])
}

func TestAssignColumnsMoreColumnsThanMembers(t *testing.T) {
	columns := AssignColumns(seatMembers(2), 4)

	require.Len(t, columns, 4)
	assert.Len(t, columns[0], 1)
	assert.Len(t, columns[1], 1)
	assert.Empty(t, columns[2])
	assert.Empty(t, columns[3])
}

func TestAssignGroups(t *testing.T) {
	members := seatMembers(10)

	groups := AssignGroups(members, 4)

	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Desks, 4)
	assert.Len(t, groups[1].Desks, 4)
	assert.Len(t, groups[2].Desks, 2)
	assert.Equal(t, 3, groups[2].Number)
	assert.Equal(t, models.Desk{Number: 9, Member: members[8]}, groups[2].Desks[0])
}

func TestPartitionCoverage(t *testing.T) {
	for n := 0; n <= models.MaxMembers; n++ {
		members := seatMembers(n)

		for cols := 1; cols <= MaxColumns; cols++ {
			var desks []models.Desk
			for _, column := range AssignColumns(members, cols) {
				desks = append(desks, column...)
			}
			assertCovers(t, members, desks)
		}

		for size := 1; size <= 8; size++ {
			var desks []models.Desk
			for _, group := range AssignGroups(members, size) {
				assert.LessOrEqual(t, len(group.Desks), size)
				desks = append(desks, group.Desks...)
			}
			assertCovers(t, members, desks)
		}
	}
}

func assertCovers(t *testing.T, members []models.Member, desks []models.Desk) {
	t.Helper()

	require.Len(t, desks, len(members))
	seen := map[string]bool{}
	for _, d := range desks {
		assert.Equal(t, members[d.Number-1], d.Member)
		assert.False(t, seen[d.Member.ID])
		seen[d.Member.ID] = true
	}
}
