package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/tomz197/cannonfall/internal/draw"
	"github.com/tomz197/cannonfall/internal/loop"
	"github.com/tomz197/cannonfall/internal/loop/config"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	if c.state.GameState == GameStatePlaying || c.state.GameState == GameStateOver {
		c.canvas.Apply(c.state.Frame.Commands)
	}

	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI()

	return c.chunkWriter.Flush()
}

// writeAt writes overlay text and marks its cells so the canvas repaints
// them next frame, which erases text that is no longer drawn.
func (c *Client) writeAt(col, row int, s string) {
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, ansi.StringWidth(s))
}

// writeCentered writes overlay text centred on row.
func (c *Client) writeCentered(row int, s string) {
	col := c.chunkWriter.WriteCentered(c.canvas.TerminalWidth(), row, s)
	c.canvas.MarkTextDirty(col, row, ansi.StringWidth(s))
}

// blinkOn alternates every 600ms for blinking prompts.
func blinkOn() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI() {
	centerY := c.canvas.TerminalHeight() / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerY)
		return
	}

	switch c.state.GameState {
	case GameStateMenu:
		c.drawMenuScreen(centerY)
	case GameStatePlaying:
		c.drawPlayingHUD()
	case GameStateOver:
		c.drawOverScreen(centerY)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerY int) {
	p := c.palette
	c.writeCentered(centerY-2, p.Title("INACTIVITY WARNING", draw.ColorYellow))

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.writeCentered(centerY, msg)
	c.writeCentered(centerY+2, "Press any key to continue")
}

// titleArt is the menu banner (figlet "small" font).
var titleArt = []string{
	`  ___   _   _  _ _  _  ___  _  _ ___ _   _    _    `,
	` / __| /_\ | \| | \| |/ _ \| \| | __/_\ | |  | |   `,
	`| (__ / _ \| .  | .  | (_) | .  | _/ _ \| |__| |__ `,
	` \___/_/ \_\_|\_|_|\_|\___/|_|\_|_/_/ \_\____|____|`,
}

// drawMenuScreen draws the title and difficulty selection.
func (c *Client) drawMenuScreen(centerY int) {
	p := c.palette
	row := centerY - 9
	if c.canvas.TerminalWidth() >= ansi.StringWidth(titleArt[0]) {
		for i, line := range titleArt {
			c.writeCentered(row+i, p.Text(line, draw.ColorYellow))
		}
		row += len(titleArt)
	} else {
		c.writeCentered(row, p.Title("CANNONFALL", draw.ColorYellow))
		row++
	}

	c.writeCentered(row+1, "~ Shoot the falling blocks before they land ~")

	row += 3
	c.writeCentered(row, p.Title("Difficulty", draw.ColorWhite))
	for i, d := range loop.Difficulties {
		line := fmt.Sprintf("%d  %-6s  a target every %.1fs", i+1, strings.ToUpper(d.Name), d.SpawnInterval.Seconds())
		if d == c.state.Selected {
			line = p.Text("> "+line+" <", draw.ColorGreen)
		} else {
			line = "  " + line + "  "
		}
		c.writeCentered(row+1+i, line)
	}

	row += len(loop.Difficulties) + 2
	c.writeCentered(row, p.Title("Controls", draw.ColorWhite))
	controlLines := []string{
		"A D / < >  . . .  Move",
		"SPACE  . . . . .  Fire",
		"Q  . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(row+1+i, line)
	}

	if blinkOn() {
		c.writeCentered(row+len(controlLines)+2, p.Text(">>  Press 1, 2 or 3 to Start  <<", draw.ColorYellow))
	}
}

// drawPlayingHUD writes the frame's text commands and the difficulty label.
func (c *Client) drawPlayingHUD() {
	for _, cmd := range c.state.Frame.Commands {
		if cmd.Kind != draw.KindText {
			continue
		}
		col, row := c.canvas.LogicalToTerminal(cmd.X, cmd.Y)
		if row < 1 {
			row = 1
		}
		c.writeAt(col, row, c.palette.Text(cmd.Text, cmd.Color))
	}

	label := strings.ToUpper(c.state.Selected.Name)
	c.writeAt(c.canvas.TerminalWidth()-len(label)-1, 1, label)
}

// gameOverArt is the game over banner (figlet "small" font).
var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

// drawOverScreen draws the game over screen over the final frame.
func (c *Client) drawOverScreen(centerY int) {
	p := c.palette
	row := centerY - 6
	if c.canvas.TerminalWidth() >= ansi.StringWidth(gameOverArt[0]) {
		for i, line := range gameOverArt {
			c.writeCentered(row+i, p.Text(line, draw.ColorRed))
		}
		row += len(gameOverArt)
	} else {
		c.writeCentered(row, p.Title("GAME OVER", draw.ColorRed))
		row++
	}

	c.writeCentered(row+1, p.Title(fmt.Sprintf("Score: %d", c.state.FinalScore), draw.ColorWhite))
	c.writeCentered(row+2, fmt.Sprintf("Best: %d  (%s)", c.state.BestScore, c.state.Selected.Name))

	if blinkOn() {
		c.writeCentered(row+4, p.Text(">>  Press SPACE to Restart  <<", draw.ColorYellow))
	}
	c.writeCentered(row+5, "1 2 3  change difficulty    Q  quit")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerY int) {
	c.writeCentered(centerY-3, c.palette.Title("SERVER SHUTTING DOWN", draw.ColorRed))
	c.writeCentered(centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.writeCentered(centerY+4, "Press Q to disconnect now")
}
