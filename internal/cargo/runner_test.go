package cargo

import (
	"strings"
	"testing"

	"github.com/crateforge/crateforge/pkg/models"
)

func TestNewArgs(t *testing.T) {
	tests := []struct {
		name string
		cfg  models.Configuration
		want string
	}{
		{
			name: "defaults",
			cfg:  models.Configuration{Name: "my-app", Path: "my-app"},
			want: "new --bin my-app",
		},
		{
			name: "explicit crate name",
			cfg:  models.Configuration{Name: "tool", Path: "projects/cli-tool"},
			want: "new --bin --name tool projects/cli-tool",
		},
		{
			name: "name matching path base is elided",
			cfg:  models.Configuration{Name: "cli-tool", Path: "projects/cli-tool"},
			want: "new --bin projects/cli-tool",
		},
		{
			name: "quiet",
			cfg:  models.Configuration{Name: "a", Path: "a", Quiet: true},
			want: "new --bin --quiet a",
		},
		{
			name: "verbose once",
			cfg:  models.Configuration{Name: "a", Path: "a", Verbose: 1},
			want: "new --bin -v a",
		},
		{
			name: "verbose twice",
			cfg:  models.Configuration{Name: "a", Path: "a", Verbose: 3},
			want: "new --bin -vv a",
		},
		{
			name: "quiet wins over verbose",
			cfg:  models.Configuration{Name: "a", Path: "a", Quiet: true, Verbose: 2},
			want: "new --bin --quiet a",
		},
		{
			name: "all pass-through flags",
			cfg: models.Configuration{
				Name: "a", Path: "a",
				Frozen: true, Locked: true,
				Color: "never", VCS: "none",
			},
			want: "new --bin --frozen --locked --color never --vcs none a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(NewArgs(tt.cfg), " ")
			if got != tt.want {
				t.Errorf("NewArgs = %q, want %q", got, tt.want)
			}
		})
	}
}
