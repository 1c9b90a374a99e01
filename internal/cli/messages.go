package cli

import (
	"context"
	"fmt"
	"os"
)

// Messages prints the latest page of a discussion's messages.
func (a *App) Messages(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: messages <discussionID>")
		return nil
	}

	page, err := a.discussions.Messages(ctx, args[0], 1, a.config.PageSize)
	if err != nil {
		printlnFn("Could not load messages:", err.Error())
		return err
	}

	for _, m := range page.Items {
		printlnFn(fmt.Sprintf("[%s] %s: %s", m.SentAt.Format("2006-01-02 15:04"), m.AuthorName, m.Text))
	}
	printlnFn(fmt.Sprintf("-- page 1 of %d (%d total) --", page.TotalPages, page.TotalCount))
	return nil
}

// Post prompts for message text and posts it to a discussion.
func (a *App) Post(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: post <discussionID>")
		return nil
	}

	text, err := GetMultiline(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		printlnFn("Nothing to post")
		return nil
	}

	msg, err := a.discussions.Post(ctx, args[0], text)
	if err != nil {
		printlnFn("Could not post message:", err.Error())
		return err
	}

	printlnFn("Posted at", msg.SentAt.Format("15:04:05"))
	return nil
}

// Watch streams live messages from a discussion until the user presses Enter.
func (a *App) Watch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: watch <discussionID>")
		return nil
	}

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := a.notifications.Subscribe(wctx, args[0])
	if err != nil {
		printlnFn("Could not subscribe:", err.Error())
		return err
	}
	defer stream.Close()

	printlnFn("Watching discussion (press Enter to stop)")

	stopped := make(chan struct{})
	go func() {
		_, _ = a.reader.ReadString('\n')
		close(stopped)
	}()

	for {
		select {
		case m, ok := <-stream.Messages():
			if !ok {
				// The goroutine above still owns the next input line; wait
				// for it here so it cannot swallow a REPL command later.
				printlnFn("Stream ended (press Enter to return)")
				<-stopped
				return nil
			}
			printlnFn(fmt.Sprintf("[%s] %s: %s", m.SentAt.Format("15:04"), m.AuthorName, m.Text))
		case <-stopped:
			return nil
		}
	}
}
