package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

var pageTemplates = template.Must(template.New("pages").Parse(pagesHTML))

func render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("failed to render page", zap.String("template", name), zap.Error(err))
	}
}

const pagesHTML = `
{{define "head"}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Ball Buddies</title>
</head>
<body>
<nav>
  <a href="/">Home</a>
  <a href="/shop">Shop</a>
  <a href="/admin">Admin</a>
</nav>
{{end}}

{{define "foot"}}
<footer><p>&copy; Ball Buddies</p></footer>
</body>
</html>
{{end}}

{{define "home"}}
{{template "head" .}}
<section class="hero">
  <h1>Welcome to Ball Buddies!</h1>
  <p>Discover playful character balls with unique personalities</p>
  <p>From Soccer Punk to Basketball Baller - find your perfect buddy!</p>
</section>
{{template "foot" .}}
{{end}}

{{define "shop"}}
{{template "head" .}}
<h1>Bring The Buddies To Your Town!</h1>
{{if .Error}}
<p class="error">Error: {{.Error}}</p>
{{else}}
{{if .Loading}}<p>Loading buddies...</p>{{end}}
<form method="get" action="/shop">
  <input type="text" name="q" placeholder="Search buddies..." value="{{.SearchTerm}}">
  <select name="sort">
    <option value="">Sort by...</option>
    <option value="name" {{if eq .SortKey "name"}}selected{{end}}>Name</option>
    <option value="price" {{if eq .SortKey "price"}}selected{{end}}>Price</option>
    <option value="rarity" {{if eq .SortKey "rarity"}}selected{{end}}>Rarity</option>
  </select>
  <select name="stock">
    <option value="all">All</option>
    <option value="inStock" {{if eq .Stock "inStock"}}selected{{end}}>In Stock</option>
    <option value="outOfStock" {{if eq .Stock "outOfStock"}}selected{{end}}>Out of Stock</option>
  </select>
  <button type="submit">Apply</button>
</form>
<p class="results-info">Showing {{.ResultCount}} of {{.TotalCount}} Buddies</p>
<div class="buddies-grid">
{{range .Buddies}}
  <div class="buddy-card">
    <img src="{{.Image}}" alt="{{.Name}}">
    <h2>{{.Name}}</h2>
    <p>{{.Sport}}</p>
    <p>{{.Description}}</p>
    <p class="price">${{printf "%.2f" .Price}}</p>
    <span class="rarity rarity-{{.Rarity}}">{{.Rarity}}</span>
    {{if .InStock}}<span class="stock">In Stock</span>{{else}}<span class="stock out">Out of Stock</span>{{end}}
  </div>
{{else}}
  <p>No buddies found matching your filters</p>
{{end}}
</div>
{{end}}
{{template "foot" .}}
{{end}}

{{define "admin_login"}}
{{template "head" .}}
<h1>Admin Portal</h1>
<p class="subtitle">Manage your Ball Buddies inventory</p>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/admin/login">
  <label>Username <input type="text" name="username"></label>
  <label>Password <input type="password" name="password"></label>
  <button type="submit" {{if .Busy}}disabled{{end}}>{{if .Busy}}Logging in...{{else}}Login{{end}}</button>
</form>
{{template "foot" .}}
{{end}}

{{define "admin_table"}}
{{template "head" .}}
<h1>Admin Portal</h1>
<p class="subtitle">Manage Ball Buddies Inventory</p>
<form method="post" action="/admin/logout"><button type="submit">Logout</button></form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<h2>Current Inventory ({{.Count}} buddies)</h2>
<table>
  <thead>
    <tr><th>Image</th><th>Name</th><th>Sport</th><th>Price</th><th>Rarity</th><th>Stock</th><th>Actions</th></tr>
  </thead>
  <tbody>
  {{range .Buddies}}
    <tr>
      <td><img src="{{.Image}}" alt="{{.Name}}" class="table-image"></td>
      <td>{{.Name}}</td>
      <td>{{.Sport}}</td>
      <td>${{printf "%.2f" .Price}}</td>
      <td><span class="rarity-badge rarity-{{.Rarity}}">{{.Rarity}}</span></td>
      <td>{{if .InStock}}In Stock{{else}}Out of Stock{{end}}</td>
      <td>
        <form method="post" action="/admin/buddies/{{.ID}}/stock">
          <input type="hidden" name="inStock" value="{{.InStock}}">
          <button type="submit">Toggle Stock</button>
        </form>
        <form method="post" action="/admin/buddies/{{.ID}}/delete">
          <button type="submit">Delete</button>
        </form>
      </td>
    </tr>
  {{end}}
  </tbody>
</table>
<h2>Add New Buddy</h2>
<form method="post" action="/admin/buddies">
  <label>Name <input type="text" name="name"></label>
  <label>Sport <input type="text" name="sport"></label>
  <label>Description <input type="text" name="description"></label>
  <label>Price <input type="number" step="0.01" name="price"></label>
  <label>Image URL <input type="text" name="image"></label>
  <label>Rarity
    <select name="rarity">
      <option value="common">common</option>
      <option value="rare">rare</option>
      <option value="ultra">ultra</option>
    </select>
  </label>
  <label>In Stock <input type="checkbox" name="inStock" checked></label>
  <button type="submit">Add Buddy</button>
</form>
{{template "foot" .}}
{{end}}

{{define "notfound"}}
{{template "head" .}}
<h1>404</h1>
<h2>Page Not Found</h2>
<p>Oops! Looks like this buddy got lost.</p>
{{template "foot" .}}
{{end}}
`
