package discord

import (
	"context"
	"testing"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/KirkDiggler/sylk/internal/services/messaging"
	"github.com/KirkDiggler/sylk/internal/services/roster"
	rosterMocks "github.com/KirkDiggler/sylk/internal/services/roster/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testChannel = "channel-1"

type SylkCommandTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoster *rosterMocks.MockService
	command    *SylkCommand
	ctx        context.Context
	members    []models.Member
}

func (s *SylkCommandTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoster = rosterMocks.NewMockService(s.ctrl)
	s.ctx = context.Background()

	src := random.New(&random.Config{Seed: 21})
	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{Random: src})
	s.Require().NoError(err)

	s.command, err = NewSylkCommand(&SylkCommandConfig{
		RosterService:    s.mockRoster,
		MessagingService: msgSvc,
		Random:           src,
	})
	s.Require().NoError(err)

	s.members = []models.Member{alice, bob, chloe, {ID: "4", Name: "Dana"}, {ID: "5", Name: "Eli"}}
}

func (s *SylkCommandTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSylkCommandSuite(t *testing.T) {
	suite.Run(t, new(SylkCommandTestSuite))
}

func sub(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: opts,
	}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func boolOpt(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionBoolean, Value: value}
}

func (s *SylkCommandTestSuite) expectMembers(members []models.Member) {
	s.mockRoster.EXPECT().
		ListMembers(s.ctx, &roster.ListMembersInput{RosterID: testChannel}).
		Return(&roster.ListMembersOutput{Members: members}, nil)
}

func (s *SylkCommandTestSuite) TestCommandDefinition() {
	cmd := s.command.GetCommand()

	s.Equal("sylk", cmd.Name)
	names := make([]string, 0, len(cmd.Options))
	for _, o := range cmd.Options {
		names = append(names, o.Name)
	}
	s.Equal([]string{"add", "remove", "members", "clear", "cards", "seats", "ladder", "roulette"}, names)
}

func (s *SylkCommandTestSuite) TestAdd() {
	s.mockRoster.EXPECT().
		AddMember(s.ctx, &roster.AddMemberInput{RosterID: testChannel, Name: "1Alice"}).
		Return(&roster.AddMemberOutput{
			Member:  models.Member{ID: "9", Name: "1Alice"},
			Members: []models.Member{{ID: "9", Name: "1Alice"}},
			Warning: roster.WarningLeadingDigit,
		}, nil)

	reply := s.command.Execute(s.ctx, testChannel, sub("add", stringOpt("name", "1Alice")))

	s.Equal("Added 1Alice", reply.Title)
	s.Contains(reply.Description, "이름은 숫자로 시작할 수 없습니다.")
	s.Contains(reply.Description, "1. 1Alice")
}

func (s *SylkCommandTestSuite) TestAddDuplicate() {
	s.mockRoster.EXPECT().
		AddMember(s.ctx, gomock.Any()).
		Return(nil, roster.ErrDuplicateName)

	reply := s.command.Execute(s.ctx, testChannel, sub("add", stringOpt("name", "Alice")))

	s.Equal(ColorError, reply.Color)
	s.True(reply.Ephemeral)
	s.Equal("이미 존재하는 이름입니다.", reply.Description)
}

func (s *SylkCommandTestSuite) TestRemoveByName() {
	s.expectMembers(s.members)
	s.mockRoster.EXPECT().
		RemoveMember(s.ctx, &roster.RemoveMemberInput{RosterID: testChannel, MemberID: "2"}).
		Return(&roster.RemoveMemberOutput{Members: []models.Member{alice}}, nil)

	reply := s.command.Execute(s.ctx, testChannel, sub("remove", stringOpt("name", " Bob ")))

	s.Equal("Removed Bob", reply.Title)
	s.Equal("1. Alice", reply.Description)
}

func (s *SylkCommandTestSuite) TestRemoveUnknown() {
	s.expectMembers(s.members)

	reply := s.command.Execute(s.ctx, testChannel, sub("remove", stringOpt("name", "Zed")))

	s.Equal(ColorError, reply.Color)
}

func (s *SylkCommandTestSuite) TestMembersAndClear() {
	s.expectMembers(s.members[:2])
	reply := s.command.Execute(s.ctx, testChannel, sub("members"))
	s.Equal("Members (2/30)", reply.Title)

	s.mockRoster.EXPECT().
		ResetMembers(s.ctx, &roster.ResetMembersInput{RosterID: testChannel}).
		Return(&roster.ResetMembersOutput{Removed: 2}, nil)
	reply = s.command.Execute(s.ctx, testChannel, sub("clear"))
	s.Equal("Removed 2 members.", reply.Description)
}

func (s *SylkCommandTestSuite) TestCards() {
	s.expectMembers(s.members)

	reply := s.command.Execute(s.ctx, testChannel, sub("cards", intOpt("teams", 2)))

	s.Equal("🃏 Card draw", reply.Title)
	s.Require().Len(reply.Fields, 2)
	s.Equal("Team 1 (3)", reply.Fields[0].Name)
	s.Equal("Team 2 (2)", reply.Fields[1].Name)
	s.Require().Len(reply.Buttons, 1)
	s.Equal(ButtonCards+":2", reply.Buttons[0].(discordgo.Button).CustomID)
}

func (s *SylkCommandTestSuite) TestCardsWithoutMembers() {
	s.expectMembers(nil)

	reply := s.command.Execute(s.ctx, testChannel, sub("cards"))

	s.Equal("멤버를 먼저 등록해주세요!", reply.Description)
}

func (s *SylkCommandTestSuite) TestSeatsInGroups() {
	s.expectMembers(s.members)

	reply := s.command.Execute(s.ctx, testChannel, sub("seats", intOpt("group_size", 2), boolOpt("groups", true)))

	s.Require().Len(reply.Fields, 3)
	s.Equal("Group 3", reply.Fields[2].Name)
	s.Equal(ButtonSeats+":2:2:groups", reply.Buttons[0].(discordgo.Button).CustomID)
}

func (s *SylkCommandTestSuite) TestLadder() {
	s.expectMembers(s.members[:3])

	reply := s.command.Execute(s.ctx, testChannel, sub("ladder", stringOpt("rewards", "coffee, , dishes, extra")))

	s.Equal("🪜 Ladder results", reply.Title)
	s.Contains(reply.Description, "Alice → ")
	s.Contains(reply.Description, "coffee")
	s.Contains(reply.Description, "dishes")
	s.Contains(reply.Description, "꽝")
	s.NotContains(reply.Description, "extra")
}

func (s *SylkCommandTestSuite) TestLadderNeedsTwo() {
	s.expectMembers(s.members[:1])

	reply := s.command.Execute(s.ctx, testChannel, sub("ladder"))

	s.Equal("최소 2명 이상이어야 합니다!", reply.Description)
}

func (s *SylkCommandTestSuite) TestRouletteClampsTeams() {
	s.expectMembers(s.members)

	reply := s.command.Execute(s.ctx, testChannel, sub("roulette", intOpt("teams", 9)))

	s.Require().Len(reply.Fields, 4)
	s.Equal("Team 1 (2)", reply.Fields[0].Name)
	s.Equal("Team 4 (1)", reply.Fields[3].Name)
	s.Equal(ButtonRoulette+":4", reply.Buttons[0].(discordgo.Button).CustomID)
}

func (s *SylkCommandTestSuite) TestButtonReruns() {
	s.expectMembers(s.members)

	reply := s.command.ExecuteButton(s.ctx, testChannel, ButtonRoulette+":2")

	s.Require().Len(reply.Fields, 2)
	s.Equal("Team 1 (3)", reply.Fields[0].Name)
}

func (s *SylkCommandTestSuite) TestUnknownButton() {
	reply := s.command.ExecuteButton(s.ctx, testChannel, "nope")

	s.Equal(ColorError, reply.Color)
}

func TestReplyResponse(t *testing.T) {
	reply := &Reply{Title: "t", Ephemeral: true, Buttons: []discordgo.MessageComponent{discordgo.Button{CustomID: "x"}}}

	resp := reply.Response(true)
	if resp.Type != discordgo.InteractionResponseUpdateMessage {
		t.Fatalf("expected update response, got %v", resp.Type)
	}
	if resp.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Fatal("expected ephemeral flag")
	}
	if resp.Data.Embeds[0].Color != ColorSuccess {
		t.Fatal("expected default colour")
	}
	if len(resp.Data.Components) != 1 {
		t.Fatal("expected one action row")
	}
}
