package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/contract"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/service"
	slackcmd "github.com/diegoclair/corrupted-zone-bot/internal/slack"
	"github.com/dustin/go-humanize"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	zoneService   contract.ZoneService
	clock         contract.Clock
	signingSecret string
}

func New(zoneService contract.ZoneService, clock contract.Clock, signingSecret string) *SlackHandler {
	return &SlackHandler{
		zoneService:   zoneService,
		clock:         clock,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdStatus:
		return h.handleStatus()
	case slackcmd.CmdNext:
		return h.handleNext(cmd)
	case slackcmd.CmdZones:
		return h.handleZones()
	case slackcmd.CmdSubscribe:
		return h.handleSubscribe(slashCmd)
	case slackcmd.CmdUnsubscribe:
		return h.handleUnsubscribe(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unrecognized command")
	}
}

func (h *SlackHandler) handleStatus() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         h.zoneService.StatusMessage(),
	}
}

func (h *SlackHandler) handleNext(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please name a zone: `/cz next cow`")
	}
	query := strings.Join(cmd.Args, " ")

	info, found, err := h.zoneService.NextOccurrence(query)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownZone) {
			return h.createErrorResponse(fmt.Sprintf("Unknown zone: %s. Use `/cz zones` to list them.", query))
		}
		return h.createErrorResponse(err.Error())
	}

	if !found {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("`%s` is not in the rotation for the next %d windows.", query, domain.MaxLookahead),
		}
	}

	now := h.clock.Now()
	if !info.WindowStart.After(now) {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("🟥 `%s` is active now, until %s", info.Zone, service.SlackTime(info.WindowEnd())),
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("⏭️ `%s` is next active %s (%s)",
			info.Zone, service.SlackTime(info.WindowStart), humanize.RelTime(info.WindowStart, now, "ago", "from now")),
	}
}

func (h *SlackHandler) handleZones() *slack.Msg {
	var zoneList strings.Builder
	zoneList.WriteString("*Zones in the rotation* (⭐ = alerted when active):\n")
	for i, zone := range domain.Zones {
		marker := ""
		if domain.IsTargetZone(zone) {
			marker = " ⭐"
		}
		zoneList.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, zone, marker))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         zoneList.String(),
	}
}

func (h *SlackHandler) handleSubscribe(slashCmd *slack.SlashCommand) *slack.Msg {
	created, err := h.zoneService.Subscribe(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error subscribing channel: %v", err))
	}

	if !created {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "This channel already receives zone alerts.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Zone alerts will be posted in this channel.",
	}
}

func (h *SlackHandler) handleUnsubscribe(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.zoneService.Unsubscribe(slashCmd.ChannelID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error unsubscribing channel: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "🔕 Zone alerts will no longer be posted in this channel.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
