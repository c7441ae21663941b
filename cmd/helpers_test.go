package cmd

import "testing"

func TestUserName(t *testing.T) {
	t.Run("user ARN", func(t *testing.T) {
		got, err := UserName("arn:aws:iam::123456789012:user/alice")

		if err != nil {
			t.Fatalf("got error %q but didn't want one", err)
		}
		if got != "alice" {
			t.Errorf("got %q but want %q", got, "alice")
		}
	})
	t.Run("role ARN is rejected", func(t *testing.T) {
		_, err := UserName("arn:aws:iam::123456789012:role/deploy")

		if err == nil {
			t.Fatal("wanted an error but didn't get one")
		}
	})
	t.Run("malformed ARN", func(t *testing.T) {
		_, err := UserName("not-an-arn")

		if err == nil {
			t.Fatal("wanted an error but didn't get one")
		}
	})
}

func TestResolveCSVPath(t *testing.T) {
	t.Run("file URI with relative path", func(t *testing.T) {
		got, err := resolveCSVPath("file://credentials.csv")

		if err != nil {
			t.Fatalf("got error %q but didn't want one", err)
		}
		if got != "credentials.csv" {
			t.Errorf("got %q but want %q", got, "credentials.csv")
		}
	})
	t.Run("file URI with absolute path", func(t *testing.T) {
		got, err := resolveCSVPath("file:///tmp/credentials.csv")

		if err != nil {
			t.Fatalf("got error %q but didn't want one", err)
		}
		if got != "/tmp/credentials.csv" {
			t.Errorf("got %q but want %q", got, "/tmp/credentials.csv")
		}
	})
	t.Run("plain path", func(t *testing.T) {
		got, err := resolveCSVPath("/tmp/credentials.csv")

		if err != nil {
			t.Fatalf("got error %q but didn't want one", err)
		}
		if got != "/tmp/credentials.csv" {
			t.Errorf("got %q but want %q", got, "/tmp/credentials.csv")
		}
	})
}
