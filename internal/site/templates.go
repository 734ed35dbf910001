package site

// shellTemplate is the html/template for the single-page reader served at /.
// It talks to the /api routes and keeps no state beyond the session id.
const shellTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>` + shellCSS + `</style>
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title">{{.Title}}</h2>
      <input type="text" id="search-input" placeholder="Search docs... (Ctrl+K)" autocomplete="off">
    </div>
    <div class="sidebar-tree" id="sidebar-tree"></div>
  </nav>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">&#9776;</button>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">&#9680;</button>
    </div>
    <div class="search-results" id="search-results" hidden></div>
    <div class="page">
      <article class="page-content" id="page-content"><p class="loading">Loading...</p></article>
      <aside class="toc" id="toc"></aside>
    </div>
  </main>
  <script>` + shellJS + `</script>
</body>
</html>`

const shellCSS = `
:root { --bg: #ffffff; --fg: #1f2328; --muted: #656d76; --border: #d0d7de; --accent: #0969da; --side: #f6f8fa; --mark: #fff8c5; }
[data-theme="dark"] { --bg: #0d1117; --fg: #e6edf3; --muted: #8d96a0; --border: #30363d; --accent: #4493f8; --side: #161b22; --mark: #634d00; }
* { box-sizing: border-box; }
body { margin: 0; display: flex; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; background: var(--bg); color: var(--fg); }
.sidebar { width: 280px; height: 100vh; position: sticky; top: 0; overflow-y: auto; background: var(--side); border-right: 1px solid var(--border); padding: 16px; }
.sidebar input { width: 100%; padding: 6px 8px; border: 1px solid var(--border); border-radius: 6px; background: var(--bg); color: var(--fg); }
.nav-section-title { margin: 16px 0 4px; font-weight: 600; font-size: 13px; text-transform: uppercase; color: var(--muted); }
.sidebar-tree ul { list-style: none; margin: 0; padding-left: 12px; }
.sidebar-tree li.dir > ul { display: none; }
.sidebar-tree li.dir.expanded > ul { display: block; }
.sidebar-tree a { color: var(--fg); text-decoration: none; display: inline-block; padding: 3px 0; }
.sidebar-tree a.active { color: var(--accent); font-weight: 600; }
.dir-toggle { cursor: pointer; display: inline-block; width: 14px; color: var(--muted); }
.dir-toggle::before { content: "\25B8"; }
li.dir.expanded > .dir-toggle::before { content: "\25BE"; }
.content { flex: 1; min-width: 0; padding: 16px 32px; }
.top-bar { display: flex; justify-content: space-between; }
.top-bar button { background: none; border: 1px solid var(--border); border-radius: 6px; color: var(--fg); cursor: pointer; }
.menu-toggle { visibility: hidden; }
.page { display: flex; gap: 32px; }
.page-content { flex: 1; min-width: 0; line-height: 1.6; }
.page-content pre { padding: 12px; overflow-x: auto; border-radius: 6px; }
.page-content img { max-width: 100%; }
.toc { width: 200px; font-size: 13px; position: sticky; top: 16px; align-self: flex-start; }
.toc a { display: block; color: var(--muted); text-decoration: none; padding: 2px 0; }
.toc .level-2 { padding-left: 8px; } .toc .level-3 { padding-left: 16px; }
.search-results { border: 1px solid var(--border); border-radius: 6px; margin: 12px 0; max-height: 60vh; overflow-y: auto; }
.search-result { padding: 10px 14px; border-bottom: 1px solid var(--border); cursor: pointer; }
.search-result:hover { background: var(--side); }
.search-result .section { font-size: 12px; color: var(--muted); }
.search-result p { margin: 4px 0 0; font-size: 14px; color: var(--muted); }
.search-empty { padding: 14px; color: var(--muted); }
mark { background: var(--mark); color: inherit; }
.error-message { text-align: center; padding: 48px 0; }
.retry-btn { margin-top: 12px; padding: 6px 14px; border-radius: 6px; border: 1px solid var(--border); background: var(--side); color: var(--fg); cursor: pointer; }
@media (max-width: 800px) {
  .sidebar { position: fixed; left: -300px; z-index: 10; transition: left .2s; }
  .sidebar.open { left: 0; }
  .menu-toggle { visibility: visible; }
  .toc { display: none; }
}
`

const shellJS = `
(function() {
  "use strict";

  var session = null;
  var tree = document.getElementById("sidebar-tree");
  var pageEl = document.getElementById("page-content");
  var tocEl = document.getElementById("toc");
  var resultsEl = document.getElementById("search-results");
  var searchInput = document.getElementById("search-input");

  function api(method, path) {
    return fetch("/api" + path, { method: method }).then(function(r) {
      return r.json().then(function(body) {
        if (!r.ok) { body.status = r.status; throw body; }
        return body;
      });
    });
  }

  function esc(s) {
    var d = document.createElement("div");
    d.textContent = s == null ? "" : s;
    return d.innerHTML;
  }

  function applySession(body) {
    session = body.session;
    tree.innerHTML = body.nav;
    if (body.document) showDocument(body.document);
  }

  function showDocument(doc) {
    pageEl.innerHTML = doc.html;
    tocEl.innerHTML = (doc.toc || []).map(function(h) {
      return '<a class="level-' + h.level + '" href="#' + esc(h.id) + '" data-anchor="' + esc(h.id) + '">' + esc(h.text) + "</a>";
    }).join("");
    document.title = doc.title;
    window.scrollTo(0, 0);
  }

  function showError(err, id) {
    if (err && err.status === 409) return;
    pageEl.innerHTML = '<div class="error-message"><h2>' + esc(err.error || "Failed to load") + "</h2><p>" +
      esc(err.message || String(err)) + "</p>" +
      (err.retryable ? '<button class="retry-btn" data-retry="' + esc(id) + '">Retry</button>' : "") + "</div>";
  }

  function load(id) {
    if (!session || !id) return;
    pageEl.innerHTML = '<p class="loading">Loading...</p>';
    api("POST", "/sessions/" + session + "/load/" + encodeURIComponent(id))
      .then(applySession)
      .catch(function(err) { showError(err, id); });
  }

  function toggle(id) {
    api("POST", "/sessions/" + session + "/toggle/" + encodeURIComponent(id)).then(applySession);
  }

  document.addEventListener("click", function(e) {
    var t = e.target;
    if (t.dataset && t.dataset.toggle) { e.preventDefault(); toggle(t.dataset.toggle); return; }
    if (t.dataset && t.dataset.retry) { load(t.dataset.retry); return; }
    if (t.dataset && t.dataset.anchor) {
      e.preventDefault();
      var el = document.getElementById(t.dataset.anchor);
      if (el) el.scrollIntoView({ behavior: "smooth" });
      return;
    }
    var link = t.closest && t.closest("a[data-doc]");
    if (link) { e.preventDefault(); load(link.dataset.doc); }
    var hit = t.closest && t.closest(".search-result");
    if (hit) { closeSearch(); load(hit.dataset.id); }
  });

  var pending = 0;
  function runSearch(q) {
    var ticket = ++pending;
    api("GET", "/search?q=" + encodeURIComponent(q)).then(function(body) {
      if (ticket !== pending) return;
      if (!body.active) { closeSearch(); return; }
      resultsEl.hidden = false;
      if (body.results.length === 0) {
        resultsEl.innerHTML = '<div class="search-empty">No results for "' + esc(body.query) + '"</div>';
        return;
      }
      resultsEl.innerHTML = body.results.map(function(r) {
        return '<div class="search-result" data-id="' + esc(r.id) + '"><div class="section">' + esc(r.section) +
          "</div><strong>" + r.highlighted_title + "</strong><p>" + r.excerpt + "</p></div>";
      }).join("");
    });
  }

  function closeSearch() {
    resultsEl.hidden = true;
    resultsEl.innerHTML = "";
  }

  searchInput.addEventListener("input", function() { runSearch(this.value); });
  document.addEventListener("keydown", function(e) {
    if ((e.ctrlKey || e.metaKey) && (e.key === "k" || e.key === "/")) { e.preventDefault(); searchInput.focus(); }
    if (e.key === "Escape") { searchInput.value = ""; closeSearch(); }
  });

  document.getElementById("menu-toggle").addEventListener("click", function() {
    document.getElementById("sidebar").classList.toggle("open");
  });

  var root = document.documentElement;
  function setTheme(theme) {
    root.setAttribute("data-theme", theme);
    try { localStorage.setItem("docsite-theme", theme); } catch (e) {}
  }
  try { if (localStorage.getItem("docsite-theme")) setTheme(localStorage.getItem("docsite-theme")); } catch (e) {}
  document.getElementById("theme-toggle").addEventListener("click", function() {
    setTheme(root.getAttribute("data-theme") === "dark" ? "light" : "dark");
  });

  api("POST", "/sessions").then(applySession).catch(function(err) { showError(err, ""); });
})();
`
