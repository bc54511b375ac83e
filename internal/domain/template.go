// Package domain implements navigation rewriting for static HTML trees.
package domain

// DefaultTemplate is the mobile-friendly navigation block inserted between the
// topnav markers. Its links are relative to the site root. Blank lines keep
// their indentation so pages migrated earlier compare as unchanged.
const DefaultTemplate = `  <!-- Hidden checkbox for mobile menu toggle -->
  <input type="checkbox" id="menu-toggle">
  
  <!-- Hamburger button (mobile only) -->
  <label for="menu-toggle" class="hamburger-label" aria-label="Open menu">
    <span></span>
    <span></span>
    <span></span>
  </label>
  
  <!-- Desktop navigation (unchanged) -->
  <div class="container navbar">
    <ul class="menu">
      <li><a href="index.html">Home</a></li>
      <li><a href="aboutus.html">About Us</a></li>
      <li><a href="events.html">Events</a></li>
      <li class="has-sub"><a href="positions.html">Positions</a>
        <ul class="sub">
          <li><a href="resolutions.html">Resolutions</a></li>
          <li><a href="Manifesto/manifesto.html">Manifesto</a></li>
          <li><a href="strategic_plan.html">Strategic Plan</a></li>
        </ul>
      </li>
      <li class="has-sub"><a href="resources.html">Resources</a>
        <ul class="sub">
          <li><a href="articles.html">Articles</a></li>
          <li><a href="blog.html">Blog</a></li>
          <li><a href="links.html">Links</a></li>
          <li><a href="news.html">News</a></li>
        </ul>
      </li>
      <li class="spacer"></li>
      <li><a class="btn-cta" href="volunteer.html">Join</a></li>
      <li><a class="btn-cta" href="membership.html">Membership</a></li>
      <li><a class="btn-cta" href="donate.html">Donate</a></li>
    </ul>
  </div>
  
  <!-- Overlay (mobile only) -->
  <label for="menu-toggle" class="nav-overlay"></label>
  
  <!-- Mobile drawer menu (mobile only) -->
  <div class="mobile-drawer">
    <ul class="mobile-menu">
      <li><a href="index.html">Home</a></li>
      <li><a href="aboutus.html">About Us</a></li>
      <li><a href="events.html">Events</a></li>
      
      <!-- Positions submenu with accordion -->
      <li>
        <details>
          <summary>Positions</summary>
          <a href="positions.html">Positions</a>
          <ul class="submenu">
            <li><a href="resolutions.html">Resolutions</a></li>
            <li><a href="Manifesto/manifesto.html">Manifesto</a></li>
            <li><a href="strategic_plan.html">Strategic Plan</a></li>
          </ul>
        </details>
      </li>
      
      <!-- Resources submenu with accordion -->
      <li>
        <details>
          <summary>Resources</summary>
          <a href="resources.html">Resources</a>
          <ul class="submenu">
            <li><a href="articles.html">Articles</a></li>
            <li><a href="blog.html">Blog</a></li>
            <li><a href="links.html">Links</a></li>
            <li><a href="news.html">News</a></li>
          </ul>
        </details>
      </li>
      
      <li><a class="btn-cta" href="volunteer.html">Join</a></li>
      <li><a class="btn-cta" href="membership.html">Membership</a></li>
      <li><a class="btn-cta" href="donate.html">Donate</a></li>
    </ul>
  </div>`

// LinkTable enumerates the link targets that get a depth prefix. Any href not
// listed is left untouched.
type LinkTable []string

// DefaultLinks is the closed set of internal targets referenced by DefaultTemplate.
var DefaultLinks = LinkTable{
	"index.html",
	"aboutus.html",
	"events.html",
	"positions.html",
	"resolutions.html",
	"strategic_plan.html",
	"resources.html",
	"articles.html",
	"blog.html",
	"links.html",
	"news.html",
	"volunteer.html",
	"membership.html",
	"donate.html",
	"Manifesto/manifesto.html",
}

// Contains reports whether link is in the table.
func (lt LinkTable) Contains(link string) bool {
	for _, l := range lt {
		if l == link {
			return true
		}
	}

	return false
}

func quoteHref(link string) string {
	return `href="` + link + `"`
}
