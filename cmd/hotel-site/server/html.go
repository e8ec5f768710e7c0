package server

import "html/template"

// Page titles, matching the public practice site.
const (
	SiteTitle   = "HOTEL PLANISPHERE - テスト自動化練習サイト"
	LoginTitle  = "ログイン | " + SiteTitle
	MyPageTitle = "マイページ | " + SiteTitle
	PlansTitle  = "宿泊プラン一覧 | " + SiteTitle
)

// layout renders every page. The navbar, the login holder and the plan card
// keep the element structure the page objects select on.
const layout = `<!DOCTYPE html>
<html lang="ja">
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: sans-serif; margin: 0; background: #f8f9fa; }
        nav { background: #343a40; padding: 8px 16px; display: flex; justify-content: space-between; }
        nav a { color: #fff; text-decoration: none; margin-right: 12px; }
        #navbarNav ul { list-style: none; display: flex; margin: 0; padding: 0; }
        .container { max-width: 960px; margin: 24px auto; background: #fff; padding: 24px; }
        .card { border: 1px solid #dee2e6; border-radius: 4px; width: 300px; text-align: center; }
        .card-header, .card-footer { background: #f1f3f5; padding: 8px; }
        .card-body { padding: 12px; }
        .btn { display: inline-block; padding: 6px 12px; border-radius: 4px; }
        .btn-outline-secondary { border: 1px solid #6c757d; }
        .btn-primary { background: #0d6efd; color: #fff; }
        .alert { color: #842029; background: #f8d7da; padding: 8px; }
    </style>
</head>
<body>
<nav>
    <div id="navbarNav">
        <ul>
            <li><a href="/ja/">ホーム</a></li>
            <li><a href="/ja/plans.html">宿泊予約</a></li>
            <li><a href="/ja/mypage.html">マイページ</a></li>
        </ul>
    </div>
    <div id="login-holder">{{if .User}}<span>{{.User}}</span>{{else}}<a class="btn btn-outline-secondary" href="/ja/login.html">ログイン</a>{{end}}</div>
</nav>
<div class="container">
{{template "content" .}}
</div>
</body>
</html>`

const homeContent = `{{define "content"}}
<h1>HOTEL PLANISPHERE</h1>
<p>テスト自動化の練習のためのサイトです。</p>
{{end}}`

const loginContent = `{{define "content"}}
<h2>ログイン</h2>
{{if .Error}}<div class="alert" id="login-error">{{.Error}}</div>{{end}}
<form method="post" action="/ja/login">
    <label for="email">メールアドレス</label>
    <input type="email" id="email" name="email">
    <label for="password">パスワード</label>
    <input type="password" id="password" name="password">
    <button type="submit" id="login-button" class="btn btn-primary">ログイン</button>
</form>
{{end}}`

const myPageContent = `{{define "content"}}
<h2>マイページ</h2>
<p id="email">{{.User}}</p>
<a id="icon-link" href="/ja/icon.html">アイコン設定</a>
{{end}}`

const plansContent = `{{define "content"}}
<h2>宿泊プラン一覧</h2>
<div class="row">
    <div class="col">
        <div class="card">
            <div class="card-header">⭐おすすめプラン⭐</div>
            <div class="card-body">
                <h5 class="card-title">お得な特典付きプラン</h5>
                <ul>
                    <li>大人1名7,000円</li>
                    <li>1名様から</li>
                    <li>スタンダードツイン</li>
                </ul>
                <a href="/ja/reserve.html?plan-id=0" class="btn btn-primary">このプランで予約</a>
            </div>
            <div class="card-footer">本日限り</div>
        </div>
    </div>
</div>
{{end}}`

// pageData is the template input.
type pageData struct {
	Title string
	User  string
	Error string
}

var (
	homeTemplate   = mustPage(homeContent)
	loginTemplate  = mustPage(loginContent)
	myPageTemplate = mustPage(myPageContent)
	plansTemplate  = mustPage(plansContent)
)

func mustPage(content string) *template.Template {
	return template.Must(template.Must(template.New("layout").Parse(layout)).Parse(content))
}
