package params

import (
	"testing"
)

func TestSet_NotificationOrdering(t *testing.T) {
	t.Parallel()

	s := New()

	var calls []string
	s.Subscribe(KeyBandwidth, func(newV, oldV, key string) {
		calls = append(calls, "key1:"+oldV+"->"+newV)
	})
	s.Subscribe(KeyBandwidth, func(newV, oldV, key string) {
		calls = append(calls, "key2:"+oldV+"->"+newV)
	})
	s.SubscribeAll(func(snapshot map[string]string, key string) {
		calls = append(calls, "wild:"+key+"="+snapshot[key])
	})

	s.Set(KeyBandwidth, "40")

	want := []string{"key1:->40", "key2:->40", "wild:bandwidth=40"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestSet_HandlersFireExactlyOncePerMutation(t *testing.T) {
	t.Parallel()

	s := New()
	keyCalls, wildCalls := 0, 0
	s.Subscribe(KeyTxPower, func(_, _, _ string) { keyCalls++ })
	s.SubscribeAll(func(_ map[string]string, _ string) { wildCalls++ })

	s.Set(KeyTxPower, "30")
	s.Set(KeyBandwidth, "10")

	if keyCalls != 1 {
		t.Errorf("key handler calls = %d, want 1", keyCalls)
	}
	if wildCalls != 2 {
		t.Errorf("wildcard handler calls = %d, want 2", wildCalls)
	}
}

func TestSet_OldValuePassed(t *testing.T) {
	t.Parallel()

	s := New()
	s.Set(KeyInclination, "53")

	var gotOld, gotNew string
	s.Subscribe(KeyInclination, func(newV, oldV, _ string) {
		gotNew, gotOld = newV, oldV
	})
	s.Set(KeyInclination, "87")

	if gotOld != "53" || gotNew != "87" {
		t.Errorf("handler saw %q -> %q, want 53 -> 87", gotOld, gotNew)
	}
}

func TestSet_UnknownKeyStillStored(t *testing.T) {
	t.Parallel()

	s := New()
	s.Set("mystery-knob", "7")

	if got := s.Get("mystery-knob"); got != "7" {
		t.Errorf("Get(mystery-knob) = %q, want 7", got)
	}
	if IsKnown("mystery-knob") {
		t.Error("mystery-knob should not be a known parameter")
	}
}

func TestSnapshot_IsDefensiveCopy(t *testing.T) {
	t.Parallel()

	s := New()
	s.Set(KeyBandwidth, "20")

	snap := s.Snapshot()
	snap[KeyBandwidth] = "999"

	if got := s.Get(KeyBandwidth); got != "20" {
		t.Errorf("store mutated through snapshot: Get = %q, want 20", got)
	}
}

func TestFloatInt_FallBackOnGarbage(t *testing.T) {
	t.Parallel()

	s := New()
	s.Set(KeyCarrierFrequency, "not-a-number")
	s.Set(KeySatelliteCount, "6")

	if got := s.Float(KeyCarrierFrequency, 2.0); got != 2.0 {
		t.Errorf("Float fallback = %v, want 2.0", got)
	}
	if got := s.Float("missing", 1.5); got != 1.5 {
		t.Errorf("Float missing = %v, want 1.5", got)
	}
	if got := s.Int(KeySatelliteCount, 1); got != 6 {
		t.Errorf("Int = %d, want 6", got)
	}
	if got := s.Int(KeyCarrierFrequency, 3); got != 3 {
		t.Errorf("Int fallback = %d, want 3", got)
	}
}

func TestMerge_SkipsEqualValues(t *testing.T) {
	t.Parallel()

	s := New()
	s.Set(KeyBandwidth, "20")
	s.Set(KeyTxPower, "33")

	notifications := 0
	s.SubscribeAll(func(_ map[string]string, _ string) { notifications++ })

	s.Merge(map[string]string{
		KeyBandwidth: "20", // unchanged
		KeyTxPower:   "30", // changed
	})

	if notifications != 1 {
		t.Errorf("notifications = %d, want 1 (unchanged key must not notify)", notifications)
	}
	if got := s.Get(KeyTxPower); got != "30" {
		t.Errorf("Get(tx-power) = %q, want 30", got)
	}
}

type recordingPersister struct {
	saves     int
	lastSaved map[string]string
}

func (r *recordingPersister) Save(values map[string]string) error {
	r.saves++
	r.lastSaved = values
	return nil
}

func TestSet_PersistsEveryMutation(t *testing.T) {
	t.Parallel()

	s := New()
	rec := &recordingPersister{}
	s.SetPersister(rec)

	s.Set(KeyBandwidth, "10")
	s.Set(KeyBandwidth, "15")

	if rec.saves != 2 {
		t.Errorf("saves = %d, want 2", rec.saves)
	}
	if rec.lastSaved[KeyBandwidth] != "15" {
		t.Errorf("last saved bandwidth = %q, want 15", rec.lastSaved[KeyBandwidth])
	}
}

func TestLoad_DoesNotNotifyOrPersist(t *testing.T) {
	t.Parallel()

	s := New()
	rec := &recordingPersister{}
	s.SetPersister(rec)
	notified := false
	s.SubscribeAll(func(_ map[string]string, _ string) { notified = true })

	s.Load(map[string]string{KeyBandwidth: "80"})

	if notified {
		t.Error("Load must not notify subscribers")
	}
	if rec.saves != 0 {
		t.Errorf("Load must not persist, saves = %d", rec.saves)
	}
	if got := s.Get(KeyBandwidth); got != "80" {
		t.Errorf("Get = %q, want 80", got)
	}
}
