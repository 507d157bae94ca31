package clock

import "testing"

func TestNew_RejectsNonPositiveInitial(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected zero initial value to be rejected")
	}
	if _, err := New(-1); err == nil {
		t.Fatal("expected negative initial value to be rejected")
	}
}

func TestTick_Sequence(t *testing.T) {
	c, err := New(1)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []int64{2, 3, 4} {
		got, err := c.Tick()
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("tick %d = %d, want %d", i, got, want)
		}
	}
}

func TestSync_RejectsNonIncreasing(t *testing.T) {
	c, err := New(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Sync(1); err == nil {
		t.Fatal("expected sync to an equal value to be rejected")
	}
	if err := c.Sync(5); err != nil {
		t.Fatal(err)
	}
	if c.Current() != 5 {
		t.Fatalf("current = %d, want 5", c.Current())
	}
}

func TestFreeze_BlocksTick(t *testing.T) {
	c, err := New(1)
	if err != nil {
		t.Fatal(err)
	}
	c.Freeze()
	if _, err := c.Tick(); err == nil {
		t.Fatal("expected tick on frozen clock to fail")
	}
	c.Unfreeze()
	if _, err := c.Tick(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateOrderAndCompare(t *testing.T) {
	if !ValidateOrder(1, 2) {
		t.Fatal("expected 2 to strictly follow 1")
	}
	if ValidateOrder(2, 2) {
		t.Fatal("expected equal values to not validate as strictly increasing")
	}
	if Compare(1, 2) != -1 || Compare(2, 1) != 1 || Compare(2, 2) != 0 {
		t.Fatal("Compare returned unexpected result")
	}
}
