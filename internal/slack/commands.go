package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdStatus      CommandType = "status"
	CmdNext        CommandType = "next"
	CmdZones       CommandType = "zones"
	CmdSubscribe   CommandType = "subscribe"
	CmdUnsubscribe CommandType = "unsubscribe"
	CmdHelp        CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand parses the text after the slash command. An empty text asks
// for the status block.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdStatus}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "status", "cz":
		cmd.Type = CmdStatus
	case "next", "when":
		cmd.Type = CmdNext
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "zones", "list", "ls":
		cmd.Type = CmdZones
	case "subscribe", "sub":
		cmd.Type = CmdSubscribe
	case "unsubscribe", "unsub":
		cmd.Type = CmdUnsubscribe
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Rotation:*
• ` + "`/cz`" + ` - Show the active zone and the next four
• ` + "`/cz next ZONE`" + ` - When a zone is next active (ex: ` + "`/cz next chaos`" + `)
• ` + "`/cz zones`" + ` - List every zone in the rotation

*Alerts:*
• ` + "`/cz subscribe`" + ` - Post zone alerts in this channel
• ` + "`/cz unsubscribe`" + ` - Stop posting zone alerts in this channel`
}
