package recording

import (
	"strings"
	"testing"
)

func TestBuildPlaylist(t *testing.T) {
	items := Filter([]*Recording{
		{ID: "a", Name: "First", Published: FlagTrue, Playbacks: []Playback{
			{Type: "presentation", URL: "https://bbb/p/a"},
			{Type: PlaybackVideo, URL: "https://bbb/v/a.mp4", Length: 2},
		}},
		{ID: "b", Name: "No video", Published: FlagTrue, Playbacks: []Playback{{Type: "presentation", URL: "https://bbb/p/b"}}},
		{ID: "c", Name: "Second", Published: FlagTrue, Playbacks: []Playback{{Type: PlaybackVideo, URL: "https://bbb/v/c.mp4", Length: 1}}},
	}, false)

	out, err := BuildPlaylist(items)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"#EXTM3U", "#EXT-X-PLAYLIST-TYPE:VOD", "https://bbb/v/a.mp4", "https://bbb/v/c.mp4", "#EXT-X-ENDLIST"} {
		if !strings.Contains(out, want) {
			t.Fatalf("playlist is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "https://bbb/p/") {
		t.Fatalf("presentation playback must be skipped:\n%s", out)
	}
	if n := strings.Count(out, "#EXT-X-DISCONTINUITY"); n != 1 {
		t.Fatalf("discontinuity count = %d, want 1:\n%s", n, out)
	}
	if strings.Index(out, "#EXT-X-DISCONTINUITY") < strings.Index(out, "https://bbb/v/a.mp4") {
		t.Fatalf("discontinuity must follow the first segment:\n%s", out)
	}
}

func TestBuildPlaylistEmpty(t *testing.T) {
	items := Filter([]*Recording{{ID: "a", Published: FlagTrue}}, false)
	if _, err := BuildPlaylist(items); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestBuildPlaylistPlayerPage(t *testing.T) {
	items := Filter([]*Recording{
		{ID: "183f0bf3a0982a127bdb8161e0c44eb696b3e75c-1700000000000", Name: "Standup", Published: FlagTrue, Playbacks: []Playback{
			{Type: PlaybackVideo, URL: "https://bbb.example.com/playback/video/183f0bf3a0982a127bdb8161e0c44eb696b3e75c-1700000000000/", Length: 5},
		}},
	}, false)

	out, err := BuildPlaylist(items)
	if err != nil {
		t.Fatal(err)
	}
	want := "https://bbb.example.com/video/183f0bf3a0982a127bdb8161e0c44eb696b3e75c-1700000000000/video-0.m4v"
	if !strings.Contains(out, want) {
		t.Fatalf("playlist is missing %q:\n%s", want, out)
	}
	if strings.Contains(out, "/playback/video/") {
		t.Fatalf("player page must not be used as a segment:\n%s", out)
	}
}

func TestMediaURL(t *testing.T) {
	cases := []struct {
		id, in, want string
	}{
		{id: "r1", in: "https://bbb/v/r1.mp4", want: "https://bbb/v/r1.mp4"},
		{id: "r1", in: "https://bbb/video/r1/video-0.M4V", want: "https://bbb/video/r1/video-0.M4V"},
		{id: "r1", in: "https://bbb/playback/video/r1/?t=1#top", want: "https://bbb/video/r1/video-0.m4v"},
		{id: "", in: "https://bbb/playback/video/r1/", want: ""},
		{id: "r1", in: "", want: ""},
		{id: "r1", in: "not a url", want: ""},
	}
	for _, tc := range cases {
		if got := MediaURL(tc.id, tc.in); got != tc.want {
			t.Fatalf("MediaURL(%q, %q) = %q, want %q", tc.id, tc.in, got, tc.want)
		}
	}
}
