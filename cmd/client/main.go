package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/adrianliechti/avatar/pkg/client"

	"github.com/google/uuid"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8000", "server url")
	tokenFlag := flag.String("token", "", "server token")
	voiceFlag := flag.String("voice", "default", "voice name")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	if _, err := c.Health.Get(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "server not reachable: "+err.Error())
		os.Exit(1)
	}

	chat(ctx, c, *voiceFlag)
}

func chat(ctx context.Context, c *client.Client, voice string) {
	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

LOOP:
	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if err != nil {
			return
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue LOOP
		}

		if strings.HasPrefix(input, "/") {
			command, arg, _ := strings.Cut(input, " ")

			switch strings.ToLower(command) {
			case "/voices":
				voices, err := c.Voices.List(ctx)

				if err != nil {
					output.WriteString(err.Error() + "\n")
					continue LOOP
				}

				for _, v := range voices.Voices {
					marker := "  "

					if v == voice {
						marker = "* "
					}

					output.WriteString(marker + v + "\n")
				}

			case "/voice":
				if arg = strings.TrimSpace(arg); arg != "" {
					voice = arg
				}

				output.WriteString("Voice: " + voice + "\n")

			default:
				output.WriteString("Unknown command\n")
			}

			continue LOOP
		}

		result, err := c.Chats.New(ctx, client.ChatRequest{
			Message: input,
			Voice:   voice,
		})

		if err != nil {
			output.WriteString(err.Error() + "\n")
			continue LOOP
		}

		output.WriteString(result.Text + "\n")

		name := uuid.NewString() + ".mp3"

		if err := os.WriteFile(name, result.Audio, 0600); err != nil {
			output.WriteString(err.Error() + "\n")
			continue LOOP
		}

		fmt.Println("Saved: " + name)

		output.WriteString("\n")
	}
}
