package events_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ardanlabs/ledger/foundation/events"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestEvents(t *testing.T) {
	t.Log("Given the need to fan out ledger events to subscribers.")
	{
		t.Logf("\tTest 0:\tWhen two subscribers are registered.")
		{
			evts := events.New()

			ch1, err := evts.Acquire("one")
			if err != nil {
				t.Fatalf("\t%s\tShould be able to acquire a channel: %v", failed, err)
			}
			ch2, err := evts.Acquire("two")
			if err != nil {
				t.Fatalf("\t%s\tShould be able to acquire a channel: %v", failed, err)
			}
			t.Logf("\t%s\tShould be able to acquire a channel.", success)

			evts.Send("mined")

			for _, ch := range []<-chan string{ch1, ch2} {
				if msg := <-ch; msg != "mined" {
					t.Fatalf("\t%s\tShould receive the message: got %q", failed, msg)
				}
			}
			t.Logf("\t%s\tShould receive the message on every channel.", success)

			if err := evts.Release("one"); err != nil {
				t.Fatalf("\t%s\tShould be able to release a channel: %v", failed, err)
			}
			if _, open := <-ch1; open {
				t.Fatalf("\t%s\tShould close the released channel.", failed)
			}
			t.Logf("\t%s\tShould close the released channel.", success)

			if err := evts.Release("one"); err == nil {
				t.Fatalf("\t%s\tShould fail to release an unknown id.", failed)
			}
			t.Logf("\t%s\tShould fail to release an unknown id.", success)
		}

		t.Logf("\tTest 1:\tWhen a subscriber falls behind.")
		{
			evts := events.New()

			if _, err := evts.Acquire("slow"); err != nil {
				t.Fatalf("\t%s\tShould be able to acquire a channel: %v", failed, err)
			}

			const extra = 5
			for i := 0; i < 100+extra; i++ {
				evts.Send(fmt.Sprintf("msg %d", i))
			}

			if got := evts.Dropped("slow"); got != extra {
				t.Fatalf("\t%s\tShould drop messages beyond the buffer: got %d, exp %d", failed, got, extra)
			}
			t.Logf("\t%s\tShould drop messages beyond the buffer.", success)
		}

		t.Logf("\tTest 2:\tWhen the events value is shut down.")
		{
			evts := events.New()

			ch, err := evts.Acquire("one")
			if err != nil {
				t.Fatalf("\t%s\tShould be able to acquire a channel: %v", failed, err)
			}

			evts.Shutdown()

			if _, open := <-ch; open {
				t.Fatalf("\t%s\tShould close every channel.", failed)
			}
			t.Logf("\t%s\tShould close every channel.", success)

			if evts.Subscribers() != 0 {
				t.Fatalf("\t%s\tShould have no subscribers: got %d", failed, evts.Subscribers())
			}
			t.Logf("\t%s\tShould have no subscribers.", success)

			if _, err := evts.Acquire("two"); !errors.Is(err, events.ErrClosed) {
				t.Fatalf("\t%s\tShould refuse new subscribers: %v", failed, err)
			}
			t.Logf("\t%s\tShould refuse new subscribers.", success)

			evts.Send("ignored")
		}
	}
}
