package catalog

type Wallpaper struct {
	Name string
	URL  string // "" for no wallpaper
}

const NoWallpaper = "None"

var wallpapers = []Wallpaper{
	{Name: NoWallpaper, URL: ""},
	{Name: "Beach", URL: "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=1350&q=80"},
	{Name: "Mountains", URL: "https://images.unsplash.com/photo-1500534623283-312aade485b7?auto=format&fit=crop&w=1350&q=80"},
	{Name: "Forest", URL: "https://images.unsplash.com/photo-1501785888041-af3ef285b470?auto=format&fit=crop&w=1350&q=80"},
}

func Wallpapers() []Wallpaper {
	out := make([]Wallpaper, len(wallpapers))
	copy(out, wallpapers)
	return out
}

// WallpaperURL returns ok=false for names outside the table.
func WallpaperURL(name string) (string, bool) {
	for _, w := range wallpapers {
		if w.Name == name {
			return w.URL, true
		}
	}
	return "", false
}

func WallpaperName(url string) string {
	for _, w := range wallpapers {
		if w.URL == url {
			return w.Name
		}
	}
	return NoWallpaper
}
