package session

import (
	"testing"
)

func dispatchAll(t *testing.T, sess *Session, cmds ...string) {
	for _, cmd := range cmds {
		if err := Dispatch(cmd, nil, sess); err != nil {
			t.Fatalf("%s: %v", cmd, err)
		}
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	if err := Dispatch("NOPE", nil, New()); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSpaceAndVectorLifecycle(t *testing.T) {
	sess := New()

	dispatchAll(t, sess,
		"S e3 3",
		"V e3 x 1,2,3",
		"V e3 y 4,5,6",
		"Z e3 z",
		"LC z 2 x 3 y",
	)

	_, z, err := sess.vector("z")
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{14, 19, 24} {
		if z.Get(i) != want {
			t.Fatalf("expected %f at index %d, got %f", want, i, z.Get(i))
		}
	}

	dispatchAll(t, sess, "D z")
	if _, _, err = sess.vector("z"); err == nil {
		t.Fatal("expected the vector to be gone")
	}
}

func TestDuplicateNamesAreRejected(t *testing.T) {
	sess := New()

	dispatchAll(t, sess, "S e3 3", "V e3 x 1,2,3")

	if err := Dispatch("S e3 4", nil, sess); err == nil {
		t.Fatal("expected an error for a duplicate space")
	} else if err = Dispatch("V e3 x 7,8,9", nil, sess); err == nil {
		t.Fatal("expected an error for a duplicate vector")
	}
}

func TestSpaceKinds(t *testing.T) {
	sess := New()

	dispatchAll(t, sess,
		"S plain 3 rn",
		"S taxi 2 normed 1",
		"S e2 2 euclidean",
	)

	if err := Dispatch("S bad 3 hyperbolic", nil, sess); err == nil {
		t.Fatal("expected an error for an unknown space kind")
	}

	// a plain linear space can not measure length
	dispatchAll(t, sess, "V plain p 1,2,3")
	if err := Dispatch("N p", nil, sess); err == nil {
		t.Fatal("expected an error for a plain space norm")
	}

	dispatchAll(t, sess, "V taxi t 3,4", "N t", "V e2 u 3,4", "N u", "DOT u u")
}

func TestOracleCommands(t *testing.T) {
	sess := New()

	dispatchAll(t, sess,
		"S e3 3",
		"V e3 x 1,2,3",
		"O sum function sum(x){ var s = 0; for( var i = 0; i < x.Size; i++ ){ s += x.Get(i); } return s; }",
		"C sum x",
	)

	if err := Dispatch("C nope x", nil, sess); err == nil {
		t.Fatal("expected an error for a missing oracle")
	} else if err = Dispatch("O broken function broken(x{", nil, sess); err == nil {
		t.Fatal("expected a compilation error")
	}
}
